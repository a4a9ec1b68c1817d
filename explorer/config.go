package explorer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/dungeonmst/gridgraph"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
)

var (
	// ErrInvalidConfig is returned by New for unusable settings.
	ErrInvalidConfig = errors.New("explorer: invalid config")
	// ErrTooManyKeys is returned by Run when a map exceeds Config.MaxKeys.
	ErrTooManyKeys = errors.New("explorer: too many key locations")
)

// Config selects symbols, concurrency and failure handling for a run.
type Config struct {
	Open rune // walkable symbol
	Wall rune // blocking symbol

	Workers        int  // concurrent pair searches, ≥ 1
	Strict         bool // abort on the first failed pair search
	BothDirections bool // search A→B and B→A separately
	MaxExpansions  int  // per-search ceiling, 0 = unlimited
	MaxKeys        int  // key location cap, 0 = unlimited

	Method           string // prim_kruskal.MethodPrim or MethodKruskal
	Root             string // MST root node ID, "" = first key location
	RequireConnected bool   // partial trees return prim_kruskal.ErrDisconnected

	Breaches bool // compute wall-breach costs for unreached key locations

	Route       bool // plan a visiting route over the tree
	ClosedRoute bool // the route returns to the root
}

// DefaultConfig returns '.' and '#' symbols, one worker per CPU, lenient
// failure handling, Prim, breach reporting and an open route.
func DefaultConfig() Config {
	return Config{
		Open:     gridgraph.DefaultOpen,
		Wall:     gridgraph.DefaultWall,
		Workers:  runtime.GOMAXPROCS(0),
		Method:   prim_kruskal.MethodPrim,
		Breaches: true,
		Route:    true,
	}
}

// Validate checks the settings without touching any grid.
func (c Config) Validate() error {
	switch {
	case c.Open == c.Wall:
		return fmt.Errorf("%w: open and wall symbols are both %q", ErrInvalidConfig, c.Open)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	case c.MaxExpansions < 0:
		return fmt.Errorf("%w: max expansions must be >= 0, got %d", ErrInvalidConfig, c.MaxExpansions)
	case c.MaxKeys < 0:
		return fmt.Errorf("%w: max keys must be >= 0, got %d", ErrInvalidConfig, c.MaxKeys)
	case c.Method != prim_kruskal.MethodPrim && c.Method != prim_kruskal.MethodKruskal:
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, prim_kruskal.ErrUnknownMethod, c.Method)
	}
	return nil
}

func (c Config) gridOptions() gridgraph.Options {
	return gridgraph.Options{Open: c.Open, Wall: c.Wall}
}
