package tsp

import (
	"github.com/katalvlaran/dungeonmst/pathgraph"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
)

// Plan orders the key locations reached by tree into a route that starts at
// the tree root.
//
// Steps:
//  1. Validate inputs and options (ErrNilInput, ErrOptionViolation).
//  2. Seed the route with the tree's preorder walk; close it if requested.
//  3. Price the seed from the path graph (ErrIncompleteGraph on a gap).
//  4. Improve with 2-opt unless disabled.
//  5. Attach one oriented path edge per leg.
//
// A tree without nodes yields an empty route; a single node yields a route
// with one stop and no legs.
func Plan(g *pathgraph.Graph, tree *prim_kruskal.SpanningTree, opts ...Option) (*Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil || tree == nil {
		return nil, ErrNilInput
	}

	ids := preorder(tree)
	route := &Route{Closed: cfg.Closed}
	if len(ids) == 0 {
		return route, nil
	}

	t := newTable(g, ids)
	tour := make([]int, len(ids), len(ids)+1)
	for i := range tour {
		tour[i] = i
	}
	if cfg.Closed && len(ids) > 1 {
		tour = append(tour, 0)
	}

	seed, err := t.cost(tour)
	if err != nil {
		return nil, err
	}
	route.SeedCost, route.Cost = seed, seed
	if cfg.Improve && len(tour) > 2 {
		moves, delta := twoOpt(t.dist, tour, cfg.Closed, cfg.MaxIters)
		route.Moves = moves
		route.Cost += delta
	}

	route.Stops = make([]string, len(tour))
	for p, i := range tour {
		route.Stops[p] = ids[i]
	}
	for p := 1; p < len(tour); p++ {
		route.Legs = append(route.Legs, t.leg(tour[p-1], tour[p]))
	}
	return route, nil
}
