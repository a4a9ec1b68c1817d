// Package pathgraph builds the complete path graph between the key locations
// of a gridgraph.Grid: one A* search per pair, one Edge per reachable
// ordered pair, weighted by path length in steps.
//
// Nodes:
//
//	Every key location is a node identified by its coordinate. Its ID is the
//	bare symbol ("A") when that symbol occurs once among the key locations,
//	and "symbol@x,y" ("A@3,4") when it repeats, so two items sharing a
//	symbol never collapse into one node.
//
// Edges:
//
//	Edges are directed records of an undirected relation: Build emits both
//	A→B and B→A, ordered by source index then destination index. Both
//	orientations share one canonical key (CanonicalKey), "A-B" with the IDs
//	in ascending order.
//
// Work:
//
//   - Pairs in different walkable regions (gridgraph.Grid.Regions) are known
//     to be unreachable and are not searched.
//   - By default each unordered pair is searched once and the reverse edge
//     reuses the reversed path; WithSearchBothDirections searches both ways.
//   - WithWorkers(n) runs searches on n goroutines. Output order never
//     depends on the worker count.
//
// Failures:
//
//	A search that fails with astar.ErrInvalidEndpoint or astar.ErrStepLimit
//	is recorded in Graph.Failures and the pair is treated as unreachable,
//	unless WithStrict is set, in which case Build returns the first failure.
//	Context cancellation always aborts the build.
//
// Complexity: O(K² · W·H · log(W·H)) time for K key locations, O(K² + W·H)
// memory per worker.
package pathgraph
