package pathgraph

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dungeonmst/astar"
	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// pair is one search job between node indices.
type pair struct {
	i, j int
}

// outcome is the result slot of one job, written by exactly one goroutine.
type outcome struct {
	path  astar.Path
	found bool
	err   error
}

// found is an assembled edge awaiting insertion in (from, to) order.
type found struct {
	i, j int
	path astar.Path
}

// Build searches every pair of key locations on grid and returns the path
// graph. See the package documentation for ordering and failure semantics.
//
// Steps:
//  1. Apply options; surface ErrOptionViolation.
//  2. Create nodes (NewGraph) and label walkable regions once.
//  3. Enumerate jobs: unordered pairs i<j, or all ordered pairs when
//     searching both directions. Pairs in different regions get no job.
//  4. Run jobs on an errgroup limited to Options.Workers; each job writes
//     only its own slot.
//  5. Collect found paths, adding reversed paths when a pair was searched
//     once, and insert edges in (from, to) index order.
//
// Memory grows with the number of searched pairs and found paths, not with
// the number of separated pairs.
func Build(ctx context.Context, grid *gridgraph.Grid, keys []gridgraph.Cell, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if grid == nil {
		return nil, ErrNilGrid
	}

	g := NewGraph(keys)
	regions := grid.Regions()
	n := len(g.Nodes)

	var jobs []pair
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!cfg.BothDirections && j < i) {
				continue
			}
			if separated(grid, regions, g.Nodes[i].Point, g.Nodes[j].Point) {
				continue
			}
			jobs = append(jobs, pair{i: i, j: j})
		}
	}

	results := make([]outcome, len(jobs))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for k, p := range jobs {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			from, to := g.Nodes[p.i].Point, g.Nodes[p.j].Point
			res, err := astar.FindPath(egctx, grid, from, to, cfg.Search...)
			if err != nil {
				if isContextErr(err) || cfg.Strict {
					return err
				}
				results[k] = outcome{err: err}
				return nil
			}
			results[k] = outcome{path: res.Path, found: res.Found}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var paths []found
	for k, p := range jobs {
		r := results[k]
		if r.err != nil {
			g.Failures = append(g.Failures, PairFailure{
				From: g.Nodes[p.i].Cell,
				To:   g.Nodes[p.j].Cell,
				Err:  r.err,
			})
			continue
		}
		if !r.found {
			continue
		}
		paths = append(paths, found{i: p.i, j: p.j, path: r.path})
		if !cfg.BothDirections {
			paths = append(paths, found{i: p.j, j: p.i, path: r.path.Reversed()})
		}
	}
	sort.Slice(paths, func(a, b int) bool {
		if paths[a].i != paths[b].i {
			return paths[a].i < paths[b].i
		}
		return paths[a].j < paths[b].j
	})
	for _, f := range paths {
		// Endpoints come from g.Nodes, so AddEdge cannot fail here.
		_ = g.AddEdge(g.Nodes[f.i].Point, g.Nodes[f.j].Point, f.path, f.path.Steps())
	}

	return g, nil
}

// separated reports whether two walkable cells lie in different regions.
// Invalid endpoints are left to the search so they surface as errors.
func separated(grid *gridgraph.Grid, regions []int, a, b gridgraph.Point) bool {
	if !grid.Walkable(a.X, a.Y) || !grid.Walkable(b.X, b.Y) {
		return false
	}
	return regions[grid.Index(a.X, a.Y)] != regions[grid.Index(b.X, b.Y)]
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
