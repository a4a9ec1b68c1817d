package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// FindPath runs A* from start to goal over grid.
//
// Steps:
//  1. Validate grid and endpoints (ErrNilGrid, ErrInvalidEndpoint).
//  2. Discover start with g=0.
//  3. Pop the lowest (f, seq) entry; if it is the goal cell, rebuild the
//     path from predecessor links and return it.
//  4. Otherwise discover every in-bounds, non-wall, unexpanded neighbor
//     (up, down, left, right) whose g+1 beats its best known cost.
//  5. An empty open set means the goal is unreachable: Found=false, nil error.
//
// Equality with the goal is by coordinate only; the symbol is irrelevant.
func FindPath(ctx context.Context, grid *gridgraph.Grid, start, goal gridgraph.Point, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if grid == nil {
		return Result{}, ErrNilGrid
	}
	if err := checkEndpoint(grid, "start", start); err != nil {
		return Result{}, err
	}
	if err := checkEndpoint(grid, "goal", goal); err != nil {
		return Result{}, err
	}

	s := newSearchState(grid, goal)
	goalIdx := grid.Index(goal.X, goal.Y)
	s.discover(start.X, start.Y, 0, -1)

	expanded := 0
	for {
		cur, ok := s.next()
		if !ok {
			return Result{Expanded: expanded}, nil
		}
		if cur.idx == goalIdx {
			path := s.reconstruct(cur.idx)
			return Result{
				Path:     path,
				Cost:     cur.g,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		expanded++
		if cfg.MaxExpansions > 0 && expanded > cfg.MaxExpansions {
			return Result{Expanded: expanded - 1}, fmt.Errorf("%w: %d expansions from %v to %v",
				ErrStepLimit, cfg.MaxExpansions, start, goal)
		}
		if expanded%cfg.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Expanded: expanded}, err
			}
		}

		cx, cy := grid.Coordinate(cur.idx)
		for _, d := range gridgraph.NeighborOffsets() {
			nx, ny := cx+d[0], cy+d[1]
			if !s.canEnter(nx, ny, cur.g+1) {
				continue
			}
			s.discover(nx, ny, cur.g+1, cur.idx)
		}
	}
}

// checkEndpoint rejects coordinates outside the grid or on a wall.
func checkEndpoint(grid *gridgraph.Grid, role string, p gridgraph.Point) error {
	if !grid.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: %s %v is out of bounds", ErrInvalidEndpoint, role, p)
	}
	if grid.IsWall(p.X, p.Y) {
		return fmt.Errorf("%w: %s %v is a wall", ErrInvalidEndpoint, role, p)
	}
	return nil
}
