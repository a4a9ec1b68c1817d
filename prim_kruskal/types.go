package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/dungeonmst/pathgraph"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that the requested root is not a node of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all key locations cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and how to treat
// disconnected graphs. Use DefaultOptions() to get a default setup (Prim).
//
// Fields:
//
//	Method           one of MethodPrim or MethodKruskal.
//	Root             node ID to grow from; "" means the first key location.
//	RequireConnected return ErrDisconnected alongside a partial tree.
type MSTOptions struct {
	Method           string
	Root             string
	RequireConnected bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the root node ID.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireConnected makes a partial tree an error (ErrDisconnected).
func WithRequireConnected() Option {
	return func(opts *MSTOptions) {
		opts.RequireConnected = true
	}
}

// DefaultOptions returns MSTOptions initialized for Prim from the first key
// location, with partial trees reported as data.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
	}
}

// SpanningTree is the chosen subset of path edges.
type SpanningTree struct {
	// Root is the node ID the tree was grown from.
	Root string
	// Edges maps canonical edge keys to the chosen edges, each oriented
	// parent to child, away from Root.
	Edges map[string]pathgraph.Edge
	// Order lists Edges' keys in the order they were added.
	Order []string
	// TotalWeight is the sum of chosen edge weights.
	TotalWeight int
	// Unreached lists key locations the tree could not reach, in scan order.
	Unreached []pathgraph.Node
}

func newTree(root string) *SpanningTree {
	return &SpanningTree{
		Root:  root,
		Edges: make(map[string]pathgraph.Edge),
	}
}

// add records e under its canonical key.
func (t *SpanningTree) add(e pathgraph.Edge) {
	k := e.Key()
	t.Edges[k] = e
	t.Order = append(t.Order, k)
	t.TotalWeight += e.Weight
}

// Len returns the number of edges in the tree.
func (t *SpanningTree) Len() int { return len(t.Order) }

// Connected reports whether every key location was reached.
func (t *SpanningTree) Connected() bool { return len(t.Unreached) == 0 }

// InOrder returns the chosen edges in insertion order.
func (t *SpanningTree) InOrder() []pathgraph.Edge {
	out := make([]pathgraph.Edge, len(t.Order))
	for i, k := range t.Order {
		out[i] = t.Edges[k]
	}
	return out
}

// Compute selects and runs the MST algorithm based on opts.
//
//	– MethodPrim (default): calls Prim.
//	– MethodKruskal:        calls Kruskal.
//	– Otherwise:            returns ErrUnknownMethod.
func Compute(g *pathgraph.Graph, opts ...Option) (*SpanningTree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodPrim:
		return Prim(g, opts...)
	case MethodKruskal:
		return Kruskal(g, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}

// resolveRoot applies the options and picks the root node ID.
// ok is false for a graph without nodes.
func resolveRoot(g *pathgraph.Graph, opts []Option) (cfg MSTOptions, root string, ok bool, err error) {
	cfg = DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return cfg, "", false, ErrInvalidGraph
	}
	if len(g.Nodes) == 0 {
		return cfg, "", false, nil
	}
	if cfg.Root == "" {
		return cfg, g.Nodes[0].ID, true, nil
	}
	if _, found := g.Node(cfg.Root); !found {
		return cfg, "", false, ErrRootNotFound
	}
	return cfg, cfg.Root, true, nil
}
