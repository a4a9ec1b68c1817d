package prim_kruskal

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmst/pathgraph"
)

// Kruskal computes the minimum spanning tree of g with a disjoint-set
// (union-find) structure using path compression and union by rank, then
// keeps the component that contains the root.
//
// Steps:
//  1. Validate graph and root, as Prim does.
//  2. Collect one edge per canonical key (pathgraph.Graph.UndirectedEdges).
//  3. Stable-sort edges by ascending Weight; ties keep graph order.
//  4. For each edge (u,v), if find(u) != find(v), union and keep the edge.
//  5. Keep only edges inside the root's component, and report the nodes
//     outside it as Unreached.
//  6. Orient each kept edge away from the root.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *pathgraph.Graph, opts ...Option) (*SpanningTree, error) {
	cfg, root, ok, err := resolveRoot(g, opts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return newTree(""), nil
	}

	edges := g.UndirectedEdges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(g.Nodes))
	rank := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		parent[n.ID] = n.ID
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	// Union by rank; reports whether two sets were merged.
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
		return true
	}

	var forest []pathgraph.Edge
	for _, e := range edges {
		if union(e.FromID, e.ToID) {
			forest = append(forest, e)
			if len(forest) == len(g.Nodes)-1 {
				break
			}
		}
	}

	tree := newTree(root)
	comp := find(root)
	reached := mapset.New[string]()
	for _, n := range g.Nodes {
		if find(n.ID) == comp {
			reached.Put(n.ID)
		}
	}
	var kept []pathgraph.Edge
	for _, e := range forest {
		if reached.Has(e.FromID) {
			kept = append(kept, e)
		}
	}
	depth := depths(root, kept)
	for _, e := range kept {
		if depth[e.FromID] > depth[e.ToID] {
			e = e.Reversed()
		}
		tree.add(e)
	}

	return finish(tree, g, reached, cfg)
}

// depths walks the forest breadth-first from root and returns each node's
// distance in edges, so every edge can be oriented parent to child.
func depths(root string, edges []pathgraph.Edge) map[string]int {
	incident := make(map[string][]pathgraph.Edge, len(edges)+1)
	for _, e := range edges {
		incident[e.FromID] = append(incident[e.FromID], e)
		incident[e.ToID] = append(incident[e.ToID], e)
	}
	depth := map[string]int{root: 0}
	queue := []string{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range incident[u] {
			v := e.ToID
			if v == u {
				v = e.FromID
			}
			if _, seen := depth[v]; !seen {
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return depth
}
