package tsp

import (
	"errors"

	"github.com/katalvlaran/dungeonmst/pathgraph"
)

// Sentinel errors.
var (
	// ErrNilInput is returned when the graph or the tree is nil.
	ErrNilInput = errors.New("tsp: graph or tree is nil")

	// ErrIncompleteGraph indicates that consecutive route stops have no path edge.
	ErrIncompleteGraph = errors.New("tsp: incomplete path graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tsp: invalid option supplied")
)

// noEdge marks a missing distance.
const noEdge = -1

// Options configures Plan.
type Options struct {
	// Closed makes the route return to its start.
	Closed bool

	// Improve enables the 2-opt pass.
	Improve bool

	// MaxIters caps accepted 2-opt moves; 0 means until no move improves.
	MaxIters int

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns an open route with unlimited 2-opt.
func DefaultOptions() Options {
	return Options{
		Closed:  false,
		Improve: true,
	}
}

// WithClosed makes the route return to the root.
func WithClosed() Option {
	return func(o *Options) { o.Closed = true }
}

// WithoutImprovement keeps the preorder seed as is.
func WithoutImprovement() Option {
	return func(o *Options) { o.Improve = false }
}

// WithMaxIters caps accepted 2-opt moves. n must be ≥ 0.
func WithMaxIters(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxIters = n
	}
}

// Route is an ordered visit of key locations.
type Route struct {
	// Stops lists node IDs in visiting order. A closed route repeats the
	// start at the end.
	Stops []string
	// Legs holds one edge per consecutive pair of stops, oriented along the route.
	Legs []pathgraph.Edge
	// Cost is the summed leg weight.
	Cost int
	// SeedCost is the preorder route cost before 2-opt.
	SeedCost int
	// Moves counts accepted 2-opt moves.
	Moves int
	// Closed reports whether the route returns to its start.
	Closed bool
}
