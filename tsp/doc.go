// Package tsp turns a spanning tree over key locations into a visiting
// route: the order in which a planner walks to every reached item.
//
// Pipeline:
//
//  1. Double-tree seed: a preorder (depth-first) walk of the spanning tree
//     from its root, children in the order the tree added them. Skipping
//     already visited nodes shortcuts the tree walk; since path weights are
//     shortest-walk lengths they obey the triangle inequality, so a closed
//     route costs at most 2·TotalWeight of the tree.
//
//  2. 2-opt: deterministic first-improvement segment reversal. A move is
//     accepted only when it strictly shortens the route. The start (the tree
//     root) is fixed. Open routes may also reverse their tail.
//
// Distances come from the path graph. A pair without an edge (a search that
// failed or was cut off) is never used by a 2-opt move; if the seed itself
// needs such a pair, Plan returns ErrIncompleteGraph.
//
// Complexity:
//   - Seed: O(V + E) for the walk, O(V²) for the distance table.
//   - 2-opt: O(V²) per pass, restarted after each accepted move; bounded by
//     WithMaxIters.
package tsp
