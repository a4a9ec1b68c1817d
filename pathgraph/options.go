package pathgraph

import (
	"fmt"

	"github.com/katalvlaran/dungeonmst/astar"
)

// Option configures Build via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded internally
// and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds parameters to customize Build.
type Options struct {
	// Workers is the number of concurrent searches. 1 runs synchronously.
	Workers int

	// Strict aborts the build on the first per-pair search failure.
	Strict bool

	// BothDirections searches A→B and B→A independently instead of reusing
	// the reversed A→B path.
	BothDirections bool

	// Search options forwarded to every astar.FindPath call.
	Search []astar.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with one worker, lenient failure handling
// and reverse-path reuse.
func DefaultOptions() Options {
	return Options{
		Workers:        1,
		Strict:         false,
		BothDirections: false,
	}
}

// WithWorkers sets the number of concurrent searches. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrict makes the first failed pair search abort the build.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithSearchBothDirections disables reverse-path reuse.
func WithSearchBothDirections() Option {
	return func(o *Options) {
		o.BothDirections = true
	}
}

// WithMaxExpansions bounds every pair search, see astar.WithMaxExpansions.
// n must be ≥ 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max expansions must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.Search = append(o.Search, astar.WithMaxExpansions(n))
	}
}
