package tsp

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmst/pathgraph"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
)

// preorder walks the tree depth-first from its root. Children are visited
// in the order their edges entered the tree. Nodes the tree does not reach
// are not listed.
//
// Complexity: O(V + E).
func preorder(tree *prim_kruskal.SpanningTree) []string {
	if tree.Root == "" {
		return nil
	}
	children := make(map[string][]string)
	for _, e := range tree.InOrder() {
		children[e.FromID] = append(children[e.FromID], e.ToID)
		children[e.ToID] = append(children[e.ToID], e.FromID)
	}

	var (
		out     []string
		visited = mapset.New[string]()
		stack   = []string{tree.Root}
	)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(u) {
			continue
		}
		visited.Put(u)
		out = append(out, u)
		// Push in reverse so the first child is popped first.
		next := children[u]
		for i := len(next) - 1; i >= 0; i-- {
			if !visited.Has(next[i]) {
				stack = append(stack, next[i])
			}
		}
	}
	return out
}

// table holds pairwise distances and edges between route stops.
type table struct {
	ids   []string
	dist  [][]int
	edges map[string]pathgraph.Edge
}

// newTable indexes the graph's edges among ids.
//
// Complexity: O(V² + E).
func newTable(g *pathgraph.Graph, ids []string) *table {
	t := &table{
		ids:   ids,
		dist:  make([][]int, len(ids)),
		edges: make(map[string]pathgraph.Edge),
	}
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
		t.dist[i] = make([]int, len(ids))
		for j := range t.dist[i] {
			t.dist[i][j] = noEdge
		}
		t.dist[i][i] = 0
	}
	for _, e := range g.UndirectedEdges() {
		i, iok := index[e.FromID]
		j, jok := index[e.ToID]
		if !iok || !jok {
			continue
		}
		t.dist[i][j], t.dist[j][i] = e.Weight, e.Weight
		t.edges[e.Key()] = e
	}
	return t
}

// cost sums consecutive distances of tour, failing on a missing pair.
func (t *table) cost(tour []int) (int, error) {
	total := 0
	for p := 1; p < len(tour); p++ {
		w := t.dist[tour[p-1]][tour[p]]
		if w == noEdge {
			return 0, fmt.Errorf("%w: no path between %s and %s",
				ErrIncompleteGraph, t.ids[tour[p-1]], t.ids[tour[p]])
		}
		total += w
	}
	return total, nil
}

// leg returns the edge from stop i to stop j, oriented i→j.
func (t *table) leg(i, j int) pathgraph.Edge {
	e := t.edges[pathgraph.CanonicalKey(t.ids[i], t.ids[j])]
	if e.FromID != t.ids[i] {
		return e.Reversed()
	}
	return e
}

// reverseArcInPlace reverses the inclusive segment tour[i..k].
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
