package pathgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dungeonmst/astar"
	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// Sentinel errors for graph construction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to Build.
	ErrNilGrid = errors.New("pathgraph: grid is nil")

	// ErrUnknownNode indicates an edge endpoint that is not a node of the graph.
	ErrUnknownNode = errors.New("pathgraph: endpoint is not a key location")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathgraph: invalid option supplied")
)

// Node is a key location together with its graph ID.
type Node struct {
	gridgraph.Cell
	ID string
}

// Edge is a shortest walk between two key locations.
type Edge struct {
	From, To     gridgraph.Cell
	FromID, ToID string
	Path         astar.Path // From..To inclusive
	Weight       int        // Path.Steps()
}

// Key returns the canonical, orientation-independent key of the edge.
func (e Edge) Key() string {
	return CanonicalKey(e.FromID, e.ToID)
}

// Reversed returns the same edge walked To→From.
func (e Edge) Reversed() Edge {
	return Edge{
		From:   e.To,
		To:     e.From,
		FromID: e.ToID,
		ToID:   e.FromID,
		Path:   e.Path.Reversed(),
		Weight: e.Weight,
	}
}

// String renders the edge as "A->B [w]".
func (e Edge) String() string {
	return fmt.Sprintf("%s->%s [%d]", e.FromID, e.ToID, e.Weight)
}

// PairFailure records a search that could not be completed.
type PairFailure struct {
	From, To gridgraph.Cell
	Err      error
}

// CanonicalKey joins two node IDs in ascending order: CanonicalKey("B", "A") == "A-B".
func CanonicalKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}

// NodeIDs derives one ID per key location, see the package documentation.
// The result is parallel to keys.
func NodeIDs(keys []gridgraph.Cell) []string {
	count := make(map[rune]int, len(keys))
	for _, k := range keys {
		count[k.Symbol]++
	}

	ids := make([]string, len(keys))
	for i, k := range keys {
		if count[k.Symbol] == 1 {
			ids[i] = string(k.Symbol)
		} else {
			ids[i] = fmt.Sprintf("%c@%d,%d", k.Symbol, k.X, k.Y)
		}
	}
	return ids
}

// FormatIDs joins node IDs for log lines.
func FormatIDs(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.ID
	}
	return strings.Join(parts, ",")
}
