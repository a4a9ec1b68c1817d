package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBreachCost_SingleWall crosses one wall row between two pockets.
func TestBreachCost_SingleWall(t *testing.T) {
	g, err := FromStrings([]string{
		"A.",
		"..",
		"##",
		"B.",
	}, DefaultOptions())
	require.NoError(t, err)

	from, to := Point{X: 0, Y: 0}, Point{X: 0, Y: 3}
	path, cost, err := g.BreachCost(from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	require.NotEmpty(t, path)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])

	walls := 0
	for i, p := range path {
		if g.IsWall(p.X, p.Y) {
			walls++
		}
		if i > 0 {
			d := abs(p.X-path[i-1].X) + abs(p.Y-path[i-1].Y)
			assert.Equal(t, 1, d, "steps must be 4-adjacent")
		}
	}
	assert.Equal(t, cost, walls)
}

// TestBreachCost_Connected returns zero when no wall separates the cells.
func TestBreachCost_Connected(t *testing.T) {
	g, err := FromStrings([]string{"A...B"}, DefaultOptions())
	require.NoError(t, err)

	path, cost, err := g.BreachCost(Point{X: 0, Y: 0}, Point{X: 4, Y: 0})
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Len(t, path, 5)
}

// TestBreachCost_ThickWall needs two conversions.
func TestBreachCost_ThickWall(t *testing.T) {
	g, err := FromStrings([]string{"A##B"}, DefaultOptions())
	require.NoError(t, err)

	_, cost, err := g.BreachCost(Point{X: 0, Y: 0}, Point{X: 3, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
}

// TestBreachCost_OutOfBounds rejects coordinates outside the grid.
func TestBreachCost_OutOfBounds(t *testing.T) {
	g, err := FromStrings([]string{"A.B"}, DefaultOptions())
	require.NoError(t, err)

	_, _, err = g.BreachCost(Point{X: -1, Y: 0}, Point{X: 2, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, _, err = g.BreachCost(Point{X: 0, Y: 0}, Point{X: 0, Y: 1})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
