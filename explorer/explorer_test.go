package explorer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeonmst/astar"
	"github.com/katalvlaran/dungeonmst/explorer"
	"github.com/katalvlaran/dungeonmst/gridgraph"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
)

var room = []string{
	"#####",
	"#A..#",
	"#...#",
	"#..B#",
	"#####",
}

var sealed = []string{
	"#####",
	"#A#B#",
	"#####",
}

func mustExplorer(t *testing.T, cfg explorer.Config, logger *slog.Logger) *explorer.Explorer {
	t.Helper()
	e, err := explorer.New(cfg, logger)
	require.NoError(t, err)
	return e
}

// TestRun_Room runs the bordered 5×5 room end to end.
func TestRun_Room(t *testing.T) {
	e := mustExplorer(t, explorer.DefaultConfig(), nil)

	r, err := e.Run(context.Background(), room)
	require.NoError(t, err)
	require.Len(t, r.Graph.Nodes, 2)
	assert.Len(t, r.Graph.Edges, 2)
	assert.True(t, r.Tree.Connected())
	assert.Equal(t, 4, r.Tree.TotalWeight)
	assert.Contains(t, r.Tree.Edges, "A-B")
	assert.Empty(t, r.Breaches)
	require.NotNil(t, r.Route)
	assert.Equal(t, []string{"A", "B"}, r.Route.Stops)
	assert.Equal(t, 4, r.Route.Cost)

	overlay := strings.Join(r.Overlay(), "\n")
	assert.Equal(t, 3, strings.Count(overlay, string(explorer.PathMark)), "inner cells of a 5-cell path")
	assert.Equal(t, 1, strings.Count(overlay, "A"))
	assert.Equal(t, 1, strings.Count(overlay, "B"))
}

// TestRun_MethodsAgree compares Prim and Kruskal through the pipeline.
func TestRun_MethodsAgree(t *testing.T) {
	rows := []string{
		"#########",
		"#A..#..B#",
		"#.#.#.#.#",
		"#...C...#",
		"#.#####.#",
		"#D.....E#",
		"#########",
	}
	totals := map[string]int{}
	for _, m := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		cfg := explorer.DefaultConfig()
		cfg.Method = m
		cfg.Workers = 3
		r, err := mustExplorer(t, cfg, nil).Run(context.Background(), rows)
		require.NoError(t, err, m)
		assert.Equal(t, 4, r.Tree.Len(), m)
		assert.True(t, r.Tree.Connected(), m)
		totals[m] = r.Tree.TotalWeight
	}
	assert.Equal(t, totals[prim_kruskal.MethodPrim], totals[prim_kruskal.MethodKruskal])
}

// TestRun_Route plans open and closed routes, or none.
func TestRun_Route(t *testing.T) {
	rows := []string{
		"A..B..C",
		"###.###",
		"###D###",
	}
	cfg := explorer.DefaultConfig()
	r, err := mustExplorer(t, cfg, nil).Run(context.Background(), rows)
	require.NoError(t, err)
	require.NotNil(t, r.Route)
	assert.Equal(t, []string{"A", "B", "D", "C"}, r.Route.Stops)
	assert.Equal(t, 10, r.Route.Cost)

	cfg.ClosedRoute = true
	r, err = mustExplorer(t, cfg, nil).Run(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "A"}, r.Route.Stops)
	assert.Equal(t, 16, r.Route.Cost)
	assert.True(t, r.Summary().Route.Closed)

	cfg.Route = false
	r, err = mustExplorer(t, cfg, nil).Run(context.Background(), rows)
	require.NoError(t, err)
	assert.Nil(t, r.Route)
	assert.Nil(t, r.Summary().Route)
}

// TestRun_Sealed reports the partial tree and the wall breach.
func TestRun_Sealed(t *testing.T) {
	e := mustExplorer(t, explorer.DefaultConfig(), nil)

	r, err := e.Run(context.Background(), sealed)
	require.NoError(t, err)
	assert.False(t, r.Tree.Connected())
	require.Len(t, r.Breaches, 1)
	b := r.Breaches[0]
	assert.Equal(t, "B", b.Node.ID)
	assert.Equal(t, 1, b.Walls)
	assert.Equal(t, []gridgraph.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, b.Path)

	cfg := explorer.DefaultConfig()
	cfg.RequireConnected = true
	cfg.Breaches = false
	r, err = mustExplorer(t, cfg, nil).Run(context.Background(), sealed)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	require.NotNil(t, r)
	assert.Empty(t, r.Breaches)
	assert.Len(t, r.Tree.Unreached, 1)
}

// TestRun_FailurePolicy contains a step-limited search unless strict.
func TestRun_FailurePolicy(t *testing.T) {
	rows := []string{"A........B"}
	cfg := explorer.DefaultConfig()
	cfg.MaxExpansions = 3

	r, err := mustExplorer(t, cfg, nil).Run(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, r.Graph.Failures, 1)
	assert.ErrorIs(t, r.Graph.Failures[0].Err, astar.ErrStepLimit)
	require.Len(t, r.Breaches, 1)
	assert.Zero(t, r.Breaches[0].Walls, "B is walkable from A, only the search gave up")

	cfg.Strict = true
	_, err = mustExplorer(t, cfg, nil).Run(context.Background(), rows)
	assert.ErrorIs(t, err, astar.ErrStepLimit)
}

// TestRun_InvalidGrid aborts before any search.
func TestRun_InvalidGrid(t *testing.T) {
	e := mustExplorer(t, explorer.DefaultConfig(), nil)

	_, err := e.Run(context.Background(), []string{"A..", "B"})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = e.Run(context.Background(), nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = e.RunGrid(context.Background(), nil)
	assert.Error(t, err)
}

// TestRun_CustomSymbols uses '_' for floor and 'X' for walls.
func TestRun_CustomSymbols(t *testing.T) {
	cfg := explorer.DefaultConfig()
	cfg.Open, cfg.Wall = '_', 'X'

	r, err := mustExplorer(t, cfg, nil).Run(context.Background(), []string{"a__b", "XX_X", "c__X"})
	require.NoError(t, err)
	assert.Len(t, r.Graph.Nodes, 3)
	assert.True(t, r.Tree.Connected())
	assert.Equal(t, 2, r.Tree.Len())
}

// TestRun_Cancelled propagates context cancellation.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mustExplorer(t, explorer.DefaultConfig(), nil).Run(ctx, room)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestConfig_Validate rejects unusable settings.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*explorer.Config)
		extra  error
	}{
		{"same symbols", func(c *explorer.Config) { c.Wall = c.Open }, nil},
		{"no workers", func(c *explorer.Config) { c.Workers = 0 }, nil},
		{"negative ceiling", func(c *explorer.Config) { c.MaxExpansions = -1 }, nil},
		{"negative key cap", func(c *explorer.Config) { c.MaxKeys = -1 }, nil},
		{"unknown method", func(c *explorer.Config) { c.Method = "boruvka" }, prim_kruskal.ErrUnknownMethod},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := explorer.DefaultConfig()
			tc.mutate(&cfg)
			_, err := explorer.New(cfg, nil)
			assert.ErrorIs(t, err, explorer.ErrInvalidConfig)
			if tc.extra != nil {
				assert.ErrorIs(t, err, tc.extra)
			}
		})
	}
	assert.NoError(t, explorer.DefaultConfig().Validate())
}

// TestRun_Logs emits a structured completion record.
func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := mustExplorer(t, explorer.DefaultConfig(), logger).Run(context.Background(), sealed)
	require.NoError(t, err)

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	last := records[len(records)-1]
	assert.Equal(t, "map explored", last["msg"])
	assert.Equal(t, "explorer", last["component"])
	assert.Equal(t, false, last["connected"])
	assert.Contains(t, buf.String(), `"unreached":"B"`)
}

// TestSummary_JSON checks the serializable view.
func TestSummary_JSON(t *testing.T) {
	r, err := mustExplorer(t, explorer.DefaultConfig(), nil).Run(context.Background(), room)
	require.NoError(t, err)

	s := r.Summary()
	assert.Equal(t, 5, s.Width)
	assert.Equal(t, 5, s.Height)
	assert.Equal(t, []explorer.Key{
		{ID: "A", Symbol: "A", X: 1, Y: 1},
		{ID: "B", Symbol: "B", X: 3, Y: 3},
	}, s.Keys)
	require.Len(t, s.Edges, 2)
	assert.Equal(t, "A-B", s.Edges[1].Key)
	assert.Equal(t, "B", s.Edges[1].From)
	assert.Equal(t, explorer.Point{X: 3, Y: 3}, s.Edges[1].Path[0])
	assert.Equal(t, prim_kruskal.MethodPrim, s.Tree.Method)
	assert.Equal(t, []string{"A-B"}, s.Tree.Order)
	assert.True(t, s.Tree.Connected)
	assert.Empty(t, s.Tree.Unreached)
	assert.Equal(t, r.Overlay(), s.Overlay)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"totalWeight":4`)
	assert.Contains(t, string(raw), `"route":{"stops":["A","B"],"cost":4`)
	assert.Contains(t, string(raw), `"unreached":[]`)
	assert.NotContains(t, string(raw), `"failures"`)
}

// TestReport_MarkAvoidsMapSymbols picks a path mark the map does not use.
func TestReport_MarkAvoidsMapSymbols(t *testing.T) {
	starOpen := explorer.DefaultConfig()
	starOpen.Open = '*'
	cases := []struct {
		name    string
		cfg     explorer.Config
		rows    []string
		mark    rune
		overlay []string
	}{
		{"default", explorer.DefaultConfig(), []string{"A...B"}, explorer.PathMark, []string{"A***B"}},
		{"star item", explorer.DefaultConfig(), []string{"*...B"}, '+', []string{"*+++B"}},
		{"star and plus items", explorer.DefaultConfig(), []string{"*...+"}, 'o', []string{"*ooo+"}},
		{"star open", starOpen, []string{"A***B"}, '+', []string{"A+++B"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := mustExplorer(t, tc.cfg, nil).Run(context.Background(), tc.rows)
			require.NoError(t, err)
			assert.Equal(t, tc.mark, r.Mark())
			assert.Equal(t, tc.overlay, r.Overlay())
			assert.Equal(t, string(tc.mark), r.Summary().PathMark)
		})
	}
}

// TestRun_MaxKeys rejects crowded maps before any search.
func TestRun_MaxKeys(t *testing.T) {
	cfg := explorer.DefaultConfig()
	cfg.MaxKeys = 2

	_, err := mustExplorer(t, cfg, nil).Run(context.Background(), []string{"A.B.C"})
	assert.ErrorIs(t, err, explorer.ErrTooManyKeys)
	assert.Contains(t, err.Error(), "3 found, at most 2")

	r, err := mustExplorer(t, cfg, nil).Run(context.Background(), []string{"A.B.."})
	require.NoError(t, err)
	assert.Len(t, r.Graph.Nodes, 2)
}
