package pathgraph

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmst/astar"
	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// Graph is the path graph over key locations.
type Graph struct {
	Nodes    []Node        // key locations in scan order
	Edges    []Edge        // reachable ordered pairs
	Failures []PairFailure // searches that could not complete

	byPoint map[gridgraph.Point]int
	byID    map[string]int
}

// NewGraph creates an edgeless graph over keys. Keys sharing a coordinate
// are collapsed onto the first occurrence.
func NewGraph(keys []gridgraph.Cell) *Graph {
	g := &Graph{
		Nodes:   make([]Node, 0, len(keys)),
		byPoint: make(map[gridgraph.Point]int, len(keys)),
		byID:    make(map[string]int, len(keys)),
	}

	unique := make([]gridgraph.Cell, 0, len(keys))
	for _, k := range keys {
		if _, dup := g.byPoint[k.Point]; dup {
			continue
		}
		g.byPoint[k.Point] = len(unique)
		unique = append(unique, k)
	}
	for i, id := range NodeIDs(unique) {
		g.Nodes = append(g.Nodes, Node{Cell: unique[i], ID: id})
		g.byID[id] = i
	}

	return g
}

// Node looks a node up by ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// NodeAt looks a node up by coordinate.
func (g *Graph) NodeAt(p gridgraph.Point) (Node, bool) {
	i, ok := g.byPoint[p]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// AddEdge appends an edge between two existing nodes. The weight is taken
// from the caller so graphs can be assembled without a grid.
func (g *Graph) AddEdge(from, to gridgraph.Point, path astar.Path, weight int) error {
	fi, ok := g.byPoint[from]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, from)
	}
	ti, ok := g.byPoint[to]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, to)
	}
	g.Edges = append(g.Edges, Edge{
		From:   g.Nodes[fi].Cell,
		To:     g.Nodes[ti].Cell,
		FromID: g.Nodes[fi].ID,
		ToID:   g.Nodes[ti].ID,
		Path:   path,
		Weight: weight,
	})
	return nil
}

// Adjacency indexes edges by node ID, each oriented away from that node.
// An edge stored in one direction only is still listed under both of its
// endpoints; when both orientations are present the first one seen wins.
// Order follows g.Edges.
//
// Complexity: O(E) time and memory.
func (g *Graph) Adjacency() map[string][]Edge {
	adj := make(map[string][]Edge, len(g.Nodes))
	seen := make(map[string]mapset.Set[string], len(g.Nodes))
	add := func(e Edge) {
		s, ok := seen[e.FromID]
		if !ok {
			s = mapset.New[string]()
			seen[e.FromID] = s
		}
		if s.Has(e.ToID) {
			return
		}
		s.Put(e.ToID)
		adj[e.FromID] = append(adj[e.FromID], e)
	}

	for _, e := range g.Edges {
		if e.FromID == e.ToID {
			continue
		}
		add(e)
		add(e.Reversed())
	}
	return adj
}

// UndirectedEdges returns one edge per canonical key, in first-seen order.
func (g *Graph) UndirectedEdges() []Edge {
	seen := mapset.New[string]()
	out := make([]Edge, 0, len(g.Edges)/2+1)
	for _, e := range g.Edges {
		if e.FromID == e.ToID || seen.Has(e.Key()) {
			continue
		}
		seen.Put(e.Key())
		out = append(out, e)
	}
	return out
}
