package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// TestKeyLocations_RowMajor verifies that items are returned Y-first, then X.
func TestKeyLocations_RowMajor(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{
		"#####",
		"#C.A#",
		"#.#.#",
		"#B..#",
		"#####",
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	keys := g.KeyLocations()
	want := []gridgraph.Cell{
		{Point: gridgraph.Point{X: 1, Y: 1}, Symbol: 'C'},
		{Point: gridgraph.Point{X: 3, Y: 1}, Symbol: 'A'},
		{Point: gridgraph.Point{X: 1, Y: 3}, Symbol: 'B'},
	}
	assert.Equal(t, want, keys)
}

// TestKeyLocations_None returns an empty, non-nil slice for item-free maps.
func TestKeyLocations_None(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{"#.#", "..."}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	keys := g.KeyLocations()
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
}

// TestKeyLocations_Idempotent scans the same grid twice.
func TestKeyLocations_Idempotent(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{
		"a.b.c",
		"#d#e#",
		"f...g",
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	first := g.KeyLocations()
	second := g.KeyLocations()
	assert.Equal(t, first, second)
	assert.Len(t, first, 7)
}

// TestKeyLocations_CustomSymbols uses non-default reserved symbols; the
// default '.' and '#' then become items.
func TestKeyLocations_CustomSymbols(t *testing.T) {
	opts := gridgraph.Options{Open: ' ', Wall: 'X'}
	keys, err := gridgraph.Scan([]string{
		"X.X",
		" #X",
	}, opts)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, '.', keys[0].Symbol)
	assert.Equal(t, '#', keys[1].Symbol)
}

// TestScan_InvalidGrid aborts without a partial result.
func TestScan_InvalidGrid(t *testing.T) {
	keys, err := gridgraph.Scan([]string{"A..", "B."}, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
	assert.Nil(t, keys)
}

// TestScan_Empty returns no items, and no error, for maps without cells.
func TestScan_Empty(t *testing.T) {
	for name, lines := range map[string][]string{
		"nil":       nil,
		"no rows":   {},
		"empty row": {""},
		"two empty": {"", ""},
	} {
		keys, err := gridgraph.Scan(lines, gridgraph.DefaultOptions())
		require.NoError(t, err, name)
		assert.NotNil(t, keys, name)
		assert.Empty(t, keys, name)
	}

	_, err := gridgraph.Scan(nil, gridgraph.Options{Open: '.', Wall: '.'})
	assert.ErrorIs(t, err, gridgraph.ErrReservedSymbols)

	_, err = gridgraph.Scan([]string{"", "A"}, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}
