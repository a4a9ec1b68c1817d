package astar

import (
	"errors"

	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal lies outside the grid or
	// on a wall cell. It concerns a single search only.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrStepLimit indicates the search expanded MaxExpansions cells without
	// settling the goal.
	ErrStepLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative expansion ceiling.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Path is an ordered walk of 4-adjacent cells, both endpoints included.
type Path []gridgraph.Point

// Steps returns the number of moves in the path: len(p)-1, or 0 for an empty path.
// It is the weight used everywhere a path is compared.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Reversed returns a new path walking p backwards.
func (p Path) Reversed() Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Result contains the outcome of one search.
type Result struct {
	Path     Path // start..goal inclusive; nil when not found
	Cost     int  // number of steps, equals Path.Steps()
	Expanded int  // cells popped from the open set
	Found    bool // false means the goal is unreachable
}

// Options configures a search.
//
// MaxExpansions – stop with ErrStepLimit after this many expansions
// (0 disables the ceiling).
//
// CheckEvery – how many expansions pass between context checks.
type Options struct {
	MaxExpansions int
	CheckEvery    int
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithMaxExpansions bounds the work a single search may do on pathological
// maps. Must be ≥ 0; negative values panic with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithCheckEvery sets how often, in expansions, the context is polled.
// Values < 1 are ignored.
func WithCheckEvery(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.CheckEvery = n
		}
	}
}

// DefaultOptions returns Options with no expansion ceiling and a context
// check every 1024 expansions.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		CheckEvery:    1024,
	}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b gridgraph.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
