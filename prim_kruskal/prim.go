package prim_kruskal

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmst/pathgraph"
)

// candidate is a queued edge; seq breaks weight ties by insertion order.
type candidate struct {
	edge pathgraph.Edge
	seq  uint64
}

func lessCandidate(a, b candidate) bool {
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}
	return a.seq < b.seq
}

// Prim computes the minimum spanning tree of g by growing outwards from the
// root using a min-heap of candidate edges.
//
// Steps:
//  1. Validate graph and root (ErrInvalidGraph, ErrRootNotFound). A graph
//     without nodes returns an empty tree.
//  2. Build the adjacency index once.
//  3. Mark the root visited and push its incident edges.
//  4. While the heap is not empty and some node is unvisited:
//     a. Pop the lightest edge (u→v).
//     b. If v is already visited, skip it (it would close a cycle).
//     c. Otherwise record the edge, mark v visited and push v's edges to
//     unvisited nodes.
//  5. List unvisited nodes in Unreached; with RequireConnected a non-empty
//     list also returns ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *pathgraph.Graph, opts ...Option) (*SpanningTree, error) {
	cfg, root, ok, err := resolveRoot(g, opts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return newTree(""), nil
	}

	tree := newTree(root)
	adj := g.Adjacency()
	visited := mapset.New[string]()
	pq := heap.New[candidate](lessCandidate)
	var seq uint64

	push := func(id string) {
		for _, e := range adj[id] {
			if !visited.Has(e.ToID) {
				pq.Push(candidate{edge: e, seq: seq})
				seq++
			}
		}
	}

	visited.Put(root)
	push(root)
	for visited.Size() < len(g.Nodes) {
		c, more := pq.Pop()
		if !more {
			break
		}
		v := c.edge.ToID
		if visited.Has(v) {
			continue
		}
		visited.Put(v)
		tree.add(c.edge)
		push(v)
	}

	return finish(tree, g, visited, cfg)
}

// finish fills Unreached and applies RequireConnected.
func finish(tree *SpanningTree, g *pathgraph.Graph, reached mapset.Set[string], cfg MSTOptions) (*SpanningTree, error) {
	for _, n := range g.Nodes {
		if !reached.Has(n.ID) {
			tree.Unreached = append(tree.Unreached, n)
		}
	}
	if cfg.RequireConnected && !tree.Connected() {
		return tree, fmt.Errorf("%w: %d of %d key locations unreached from %s",
			ErrDisconnected, len(tree.Unreached), len(g.Nodes), tree.Root)
	}
	return tree, nil
}
