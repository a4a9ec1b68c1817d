package gridgraph

import "fmt"

const (
	// DefaultOpen is the default symbol for walkable floor.
	DefaultOpen = '.'
	// DefaultWall is the default symbol for blocked cells.
	DefaultWall = '#'
)

// Point is a grid coordinate. X is the column, Y is the row; both are 0-indexed.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell represents a single grid cell with its coordinates and symbol.
type Cell struct {
	Point
	Symbol rune // Original grid symbol at (X, Y)
}

// String renders the cell as "S(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("%c(%d,%d)", c.Symbol, c.X, c.Y)
}

// Options contains the reserved symbols of a map.
type Options struct {
	// Open is the walkable, non-key symbol.
	Open rune
	// Wall is the non-walkable symbol.
	Wall rune
}

// DefaultOptions returns Options with Open='.' and Wall='#'.
func DefaultOptions() Options {
	return Options{
		Open: DefaultOpen,
		Wall: DefaultWall,
	}
}

// Grid is an immutable rectangular map of symbols.
// Width and Height define dimensions; rows[y][x] holds the original symbol.
type Grid struct {
	Width, Height int
	Open, Wall    rune

	rows [][]rune
}

// offsets4 lists the 4-directional moves in search order: up, down, left, right.
var offsets4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// NeighborOffsets returns the 4-directional moves as (dx, dy) pairs,
// in the fixed order up, down, left, right.
func NeighborOffsets() [4][2]int {
	return offsets4
}
