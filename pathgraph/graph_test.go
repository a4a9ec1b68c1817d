package pathgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeonmst/gridgraph"
	"github.com/katalvlaran/dungeonmst/pathgraph"
)

func cell(sym rune, x, y int) gridgraph.Cell {
	return gridgraph.Cell{Point: gridgraph.Point{X: x, Y: y}, Symbol: sym}
}

// TestCanonicalKey is orientation independent.
func TestCanonicalKey(t *testing.T) {
	assert.Equal(t, "A-B", pathgraph.CanonicalKey("A", "B"))
	assert.Equal(t, "A-B", pathgraph.CanonicalKey("B", "A"))
	assert.Equal(t, "A@1,1-A@3,1", pathgraph.CanonicalKey("A@3,1", "A@1,1"))
}

// TestNodeIDs qualifies only repeated symbols.
func TestNodeIDs(t *testing.T) {
	ids := pathgraph.NodeIDs([]gridgraph.Cell{cell('A', 1, 1), cell('B', 2, 1), cell('A', 5, 4)})
	assert.Equal(t, []string{"A@1,1", "B", "A@5,4"}, ids)
}

// TestNewGraph_CollapsesSameCoordinate keeps the first cell per coordinate.
func TestNewGraph_CollapsesSameCoordinate(t *testing.T) {
	g := pathgraph.NewGraph([]gridgraph.Cell{cell('A', 0, 0), cell('B', 0, 0), cell('C', 1, 0)})
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "A", g.Nodes[0].ID)
	assert.Equal(t, "C", g.Nodes[1].ID)

	n, ok := g.NodeAt(gridgraph.Point{X: 1, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, "C", n.ID)
	_, ok = g.Node("B")
	assert.False(t, ok)
}

// TestAddEdge_UnknownNode rejects endpoints that are not key locations.
func TestAddEdge_UnknownNode(t *testing.T) {
	g := pathgraph.NewGraph([]gridgraph.Cell{cell('A', 0, 0)})
	err := g.AddEdge(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 9, Y: 9}, nil, 1)
	assert.ErrorIs(t, err, pathgraph.ErrUnknownNode)
	err = g.AddEdge(gridgraph.Point{X: 9, Y: 9}, gridgraph.Point{X: 0, Y: 0}, nil, 1)
	assert.ErrorIs(t, err, pathgraph.ErrUnknownNode)
}

// TestAdjacency lists every edge under both endpoints exactly once, oriented
// away from the indexed node, whether the graph stores one or both directions.
func TestAdjacency(t *testing.T) {
	keys := []gridgraph.Cell{cell('A', 0, 0), cell('B', 2, 0), cell('C', 4, 0)}
	one := pathgraph.NewGraph(keys)
	require.NoError(t, one.AddEdge(keys[0].Point, keys[1].Point, nil, 2))
	require.NoError(t, one.AddEdge(keys[1].Point, keys[2].Point, nil, 2))

	both := pathgraph.NewGraph(keys)
	for _, e := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		require.NoError(t, both.AddEdge(keys[e[0]].Point, keys[e[1]].Point, nil, 2))
	}

	for name, g := range map[string]*pathgraph.Graph{"one": one, "both": both} {
		t.Run(name, func(t *testing.T) {
			adj := g.Adjacency()
			require.Len(t, adj["A"], 1)
			require.Len(t, adj["B"], 2)
			require.Len(t, adj["C"], 1)
			for id, edges := range adj {
				for _, e := range edges {
					assert.Equal(t, id, e.FromID)
				}
			}
			assert.Len(t, g.UndirectedEdges(), 2)
		})
	}
}
