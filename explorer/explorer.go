package explorer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/dungeonmst/gridgraph"
	"github.com/katalvlaran/dungeonmst/pathgraph"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
	"github.com/katalvlaran/dungeonmst/tsp"
)

// Explorer runs the pipeline with a fixed Config. It holds no per-run state
// and is safe for concurrent use.
type Explorer struct {
	cfg    Config
	logger *slog.Logger
}

// New validates cfg and returns an Explorer. A nil logger discards output.
func New(cfg Config, logger *slog.Logger) (*Explorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Explorer{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "explorer")),
	}, nil
}

// Config returns the settings the explorer was built with.
func (e *Explorer) Config() Config { return e.cfg }

// Run explores one map given as rows of text.
//
// Steps:
//  1. Parse and validate the grid; failures abort with ErrInvalidGrid.
//  2. Scan key locations in row-major order; more than Config.MaxKeys
//     aborts with ErrTooManyKeys before any search.
//  3. Build the path graph (concurrent A* searches).
//  4. Reduce it to a spanning tree.
//  5. For a partial tree, measure wall breaches from the root.
//  6. Order the reached key locations into a visiting route.
//
// The report is returned together with prim_kruskal.ErrDisconnected when
// Config.RequireConnected is set and some key location was not reached.
func (e *Explorer) Run(ctx context.Context, rows []string) (*Report, error) {
	start := time.Now()

	grid, err := gridgraph.FromStrings(rows, e.cfg.gridOptions())
	if err != nil {
		e.logger.Warn("grid rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("explorer: %w", err)
	}
	return e.explore(ctx, grid, start)
}

// RunGrid explores an already parsed grid. Its symbols take precedence over
// Config.Open and Config.Wall.
func (e *Explorer) RunGrid(ctx context.Context, grid *gridgraph.Grid) (*Report, error) {
	if grid == nil {
		return nil, fmt.Errorf("explorer: %w", pathgraph.ErrNilGrid)
	}
	return e.explore(ctx, grid, time.Now())
}

func (e *Explorer) explore(ctx context.Context, grid *gridgraph.Grid, start time.Time) (*Report, error) {
	keys := grid.KeyLocations()
	e.logger.Debug("grid scanned",
		slog.Int("width", grid.Width),
		slog.Int("height", grid.Height),
		slog.Int("keys", len(keys)),
		slog.Int("regions", grid.RegionCount()),
	)
	if e.cfg.MaxKeys > 0 && len(keys) > e.cfg.MaxKeys {
		e.logger.Warn("map rejected", slog.Int("keys", len(keys)), slog.Int("max_keys", e.cfg.MaxKeys))
		return nil, fmt.Errorf("%w: %d found, at most %d allowed", ErrTooManyKeys, len(keys), e.cfg.MaxKeys)
	}

	graph, err := pathgraph.Build(ctx, grid, keys, e.buildOptions()...)
	if err != nil {
		e.logger.Warn("path graph aborted", slog.String("error", err.Error()))
		return nil, fmt.Errorf("explorer: build path graph: %w", err)
	}
	for _, f := range graph.Failures {
		e.logger.Warn("pair search failed",
			slog.String("from", f.From.String()),
			slog.String("to", f.To.String()),
			slog.String("error", f.Err.Error()),
		)
	}
	e.logger.Debug("path graph built",
		slog.Int("nodes", len(graph.Nodes)),
		slog.Int("edges", len(graph.Edges)),
		slog.Int("failures", len(graph.Failures)),
	)

	tree, treeErr := prim_kruskal.Compute(graph, e.treeOptions()...)
	if treeErr != nil && !errors.Is(treeErr, prim_kruskal.ErrDisconnected) {
		return nil, fmt.Errorf("explorer: spanning tree: %w", treeErr)
	}

	report := &Report{
		Grid:   grid,
		Graph:  graph,
		Tree:   tree,
		Method: e.cfg.Method,
	}
	if !tree.Connected() {
		e.logger.Info("key locations unreached",
			slog.String("root", tree.Root),
			slog.String("unreached", pathgraph.FormatIDs(tree.Unreached)),
		)
		if e.cfg.Breaches {
			if report.Breaches, err = breaches(grid, graph, tree); err != nil {
				return nil, fmt.Errorf("explorer: breach cost: %w", err)
			}
		}
	}
	if e.cfg.Route {
		report.Route = e.route(graph, tree)
	}
	report.Duration = time.Since(start)

	e.logger.Info("map explored",
		slog.Int("keys", len(graph.Nodes)),
		slog.Int("tree_edges", tree.Len()),
		slog.Int("total_weight", tree.TotalWeight),
		slog.Bool("connected", tree.Connected()),
		slog.Duration("elapsed", report.Duration),
	)
	return report, treeErr
}

// route plans the visiting route. A gap left by a failed pair search only
// drops the route from the report.
func (e *Explorer) route(graph *pathgraph.Graph, tree *prim_kruskal.SpanningTree) *tsp.Route {
	var opts []tsp.Option
	if e.cfg.ClosedRoute {
		opts = append(opts, tsp.WithClosed())
	}
	r, err := tsp.Plan(graph, tree, opts...)
	if err != nil {
		e.logger.Warn("route skipped", slog.String("error", err.Error()))
		return nil
	}
	e.logger.Debug("route planned",
		slog.Int("stops", len(r.Stops)),
		slog.Int("cost", r.Cost),
		slog.Int("seed_cost", r.SeedCost),
		slog.Int("moves", r.Moves),
	)
	return r
}

func (e *Explorer) buildOptions() []pathgraph.Option {
	opts := []pathgraph.Option{pathgraph.WithWorkers(e.cfg.Workers)}
	if e.cfg.Strict {
		opts = append(opts, pathgraph.WithStrict())
	}
	if e.cfg.BothDirections {
		opts = append(opts, pathgraph.WithSearchBothDirections())
	}
	if e.cfg.MaxExpansions > 0 {
		opts = append(opts, pathgraph.WithMaxExpansions(e.cfg.MaxExpansions))
	}
	return opts
}

func (e *Explorer) treeOptions() []prim_kruskal.Option {
	opts := []prim_kruskal.Option{
		prim_kruskal.WithMethod(e.cfg.Method),
		prim_kruskal.WithRoot(e.cfg.Root),
	}
	if e.cfg.RequireConnected {
		opts = append(opts, prim_kruskal.WithRequireConnected())
	}
	return opts
}

// breaches measures, for each unreached key location, the fewest walls
// between it and the tree root.
func breaches(grid *gridgraph.Grid, graph *pathgraph.Graph, tree *prim_kruskal.SpanningTree) ([]Breach, error) {
	root, ok := graph.Node(tree.Root)
	if !ok {
		return nil, nil
	}
	out := make([]Breach, 0, len(tree.Unreached))
	for _, n := range tree.Unreached {
		path, walls, err := grid.BreachCost(root.Point, n.Point)
		if err != nil {
			return nil, err
		}
		out = append(out, Breach{Node: n, Walls: walls, Path: path})
	}
	return out, nil
}
