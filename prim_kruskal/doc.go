// Package prim_kruskal reduces a pathgraph.Graph to a minimum spanning tree,
// using path length (steps) as edge weight.
//
// What & Why
//
//   - The path graph built by package pathgraph is complete over every
//     reachable pair of key locations. A planner only needs a minimal set of
//     those connections to reach every item: the minimum spanning tree.
//
//   - When some items are sealed off, no spanning tree exists. The result is
//     then a partial tree over the items reachable from the root, and
//     SpanningTree.Unreached lists the rest. This is data, not an error.
//
// Algorithms Provided
//
//   - Prim(g, opts...) (*SpanningTree, error)
//
//   - Strategy: grow one tree from the root (the first key location unless
//     WithRoot says otherwise). A min-heap holds edges leaving the tree,
//     ordered by weight and then by insertion order. Popped edges whose far
//     end is already in the tree are discarded (lazy deletion). Each newly
//     added node pushes its own incident edges via a precomputed adjacency
//     index, so a step costs O(degree · log E) rather than a rescan of E.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Kruskal(g, opts...) (*SpanningTree, error)
//
//   - Strategy: stable-sort undirected edges by weight, merge components
//     with union-find, then keep the edges of the root's component.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Both produce trees of equal total weight; Kruskal serves as a
//     cross-check for Prim.
//
// Error Conditions
//
//   - ErrInvalidGraph  : graph is nil.
//   - ErrRootNotFound  : WithRoot names an ID that is not a node.
//   - ErrDisconnected  : only with WithRequireConnected, returned together
//     with the partial tree.
//   - ErrUnknownMethod : Compute was given an unknown method name.
//
// A graph without nodes yields an empty, connected tree.
package prim_kruskal
