// Package gridgraph treats a 2D dungeon map of single-character cells as a
// graph, and finds the "key locations" a planner has to connect.
//
// What:
//
//   - Grid wraps a rectangular [][]rune map with two reserved symbols:
//     Open (walkable floor) and Wall (blocked). Every other symbol is an item.
//   - KeyLocations scans the grid once, in row-major order, and returns every
//     item cell.
//   - Regions labels 4-connected walkable areas, so callers can tell that two
//     cells can never reach each other without running a search.
//   - BreachCost computes how many wall cells separate two cells (0-1 BFS).
//
// Why:
//
//   - Dungeon planning: which items are reachable, and from where.
//   - Map validation: detect sealed pockets before handing a map to a planner.
//
// Complexity:
//
//   - NewGrid / FromStrings: O(W×H), Memory: O(W×H) (deep copy).
//   - KeyLocations:          O(W×H), Memory: O(K).
//   - Regions:               O(W×H), Memory: O(W×H).
//   - BreachCost:            O(W×H), Memory: O(W×H).
//
// Options:
//
//   - Options.Open: symbol for walkable, non-key floor (default '.').
//   - Options.Wall: symbol for blocked cells (default '#').
//
// Errors:
//
//   - ErrInvalidGrid: umbrella for every grid validation failure.
//   - ErrEmptyGrid: NewGrid input has no rows or no columns. Scan treats
//     such input as a map without items instead.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrReservedSymbols: Open and Wall are the same symbol.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//
// A Grid is never mutated after construction and is safe for concurrent readers.
package gridgraph
