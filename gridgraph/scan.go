package gridgraph

// KeyLocations walks the grid once and returns every cell whose symbol is
// neither Open nor Wall, in row-major order (Y ascending, then X ascending).
// The result is empty, not nil, when the grid holds no items.
// Repeated calls on the same grid return identical slices.
//
// Complexity: O(W×H) time, O(K) memory for K key locations.
func (g *Grid) KeyLocations() []Cell {
	keys := make([]Cell, 0)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsKey(x, y) {
				keys = append(keys, Cell{Point: Point{X: x, Y: y}, Symbol: g.rows[y][x]})
			}
		}
	}

	return keys
}

// Scan validates lines as a grid and returns its key locations.
// Validation failures wrap ErrInvalidGrid; no partial scan is attempted.
// Input with no rows, or with only empty rows, holds no items and yields an
// empty slice rather than ErrEmptyGrid.
func Scan(lines []string, opts Options) ([]Cell, error) {
	if opts.Open == opts.Wall {
		return nil, ErrReservedSymbols
	}
	if blank(lines) {
		return make([]Cell, 0), nil
	}
	g, err := FromStrings(lines, opts)
	if err != nil {
		return nil, err
	}

	return g.KeyLocations(), nil
}

func blank(lines []string) bool {
	for _, line := range lines {
		if line != "" {
			return false
		}
	}
	return true
}
