// Package astar finds shortest walkable paths between two cells of a
// gridgraph.Grid using A* search.
//
// Movement model:
//
//   - 4-directional (up, down, left, right), every step costs 1.
//   - Walls and out-of-bounds cells are never entered; key locations are.
//   - Heuristic: Manhattan distance to the goal, which is admissible and
//     consistent for this movement model, so returned paths are optimal.
//
// Open set:
//
//	A min-heap ordered by f = g + h. Ties are broken by discovery order
//	(first discovered wins), which makes the returned path deterministic
//	for a given grid, start and goal.
//
// Visited bookkeeping:
//
//	A cell records its cost and predecessor when it is discovered (pushed),
//	and is closed when it is expanded (popped). A discovered but unexpanded
//	cell is only rediscovered through a strictly cheaper route; the stale
//	heap entry is dropped on pop. Because every step costs 1 and Manhattan
//	distance is consistent, an expanded cell is never reopened. Both facts
//	depend on unit step costs, and the package deliberately offers no
//	weighted variant.
//
// Search state (cost-so-far, predecessor, visited flags) lives in
// index-addressed slices owned by a single FindPath call; nothing is shared
// between searches, so any number of searches may run concurrently over the
// same immutable grid.
//
// Outcomes:
//
//   - Result.Found == true : Path holds start..goal inclusive, Cost = len(Path)-1.
//   - Result.Found == false, err == nil : the goal is unreachable.
//   - ErrInvalidEndpoint : start or goal is out of bounds or on a wall.
//   - ErrStepLimit       : WithMaxExpansions ceiling reached first.
//   - ctx.Err()          : the context was cancelled.
//
// Complexity: O(W·H · log(W·H)) time, O(W·H) memory per search.
package astar
