package gridgraph

import "strings"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of symbols.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or no columns, ErrNonRectangular
// if any row length differs and ErrReservedSymbols if opts.Open == opts.Wall.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]rune, opts Options) (*Grid, error) {
	if opts.Open == opts.Wall {
		return nil, ErrReservedSymbols
	}
	if len(values) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	// Deep copy to prevent external mutation
	rows := make([][]rune, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]rune, w)
		copy(rows[y], values[y])
	}

	return &Grid{
		Width:  w,
		Height: h,
		Open:   opts.Open,
		Wall:   opts.Wall,
		rows:   rows,
	}, nil
}

// FromStrings builds a Grid from text lines, one rune per cell.
// Lines are measured in runes, not bytes.
func FromStrings(lines []string, opts Options) (*Grid, error) {
	values := make([][]rune, len(lines))
	for y, line := range lines {
		values[y] = []rune(line)
	}

	return NewGrid(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the symbol at (x,y). The caller must check InBounds first.
func (g *Grid) At(x, y int) rune {
	return g.rows[y][x]
}

// IsWall reports whether (x,y) holds the wall symbol.
func (g *Grid) IsWall(x, y int) bool {
	return g.rows[y][x] == g.Wall
}

// IsOpen reports whether (x,y) holds the open symbol.
func (g *Grid) IsOpen(x, y int) bool {
	return g.rows[y][x] == g.Open
}

// IsKey reports whether (x,y) holds an item, i.e. neither open nor wall.
func (g *Grid) IsKey(x, y int) bool {
	s := g.rows[y][x]
	return s != g.Open && s != g.Wall
}

// Walkable reports whether (x,y) is inside the grid and not a wall.
// Key locations are walkable.
func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.rows[y][x] != g.Wall
}

// CellAt returns the Cell at p, or ErrOutOfBounds.
func (g *Grid) CellAt(p Point) (Cell, error) {
	if !g.InBounds(p.X, p.Y) {
		return Cell{}, ErrOutOfBounds
	}

	return Cell{Point: p, Symbol: g.rows[p.Y][p.X]}, nil
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Rows returns a copy of the grid as text lines.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	for y, row := range g.rows {
		out[y] = string(row)
	}

	return out
}

// String renders the grid, one line per row.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
