package explorer

import (
	"time"
	"unicode"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmst/gridgraph"
	"github.com/katalvlaran/dungeonmst/pathgraph"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
	"github.com/katalvlaran/dungeonmst/tsp"
)

// PathMark is the preferred overlay symbol for cells on a spanning-tree
// path. Report.Mark falls back to another symbol when the map uses it.
const PathMark = '*'

// fallbackMarks are tried in order after PathMark.
var fallbackMarks = []rune{'+', 'o', '~', ':', '%', '=', '&', '$', '^'}

// Breach tells how far an unreached key location is from the tree root.
type Breach struct {
	Node  pathgraph.Node
	Walls int               // wall cells to remove
	Path  []gridgraph.Point // walk from the root crossing those walls
}

// Report is the outcome of one run.
type Report struct {
	Grid     *gridgraph.Grid
	Graph    *pathgraph.Graph
	Tree     *prim_kruskal.SpanningTree
	Method   string
	Breaches []Breach
	Route    *tsp.Route // nil when disabled or unplannable
	Duration time.Duration
}

// Mark returns the symbol Overlay uses for path cells: PathMark unless the
// grid already contains it, then the first unused fallback, then the first
// unused printable rune. It never equals Open, Wall or any key symbol.
func (r *Report) Mark() rune {
	used := mapset.New[rune]()
	used.Put(r.Grid.Open)
	used.Put(r.Grid.Wall)
	for y := 0; y < r.Grid.Height; y++ {
		for x := 0; x < r.Grid.Width; x++ {
			used.Put(r.Grid.At(x, y))
		}
	}
	for _, m := range append([]rune{PathMark}, fallbackMarks...) {
		if !used.Has(m) {
			return m
		}
	}
	for m := rune('!'); ; m++ {
		if unicode.IsGraphic(m) && !unicode.IsSpace(m) && !used.Has(m) {
			return m
		}
	}
}

// Overlay returns the grid rows with every open cell on a tree path
// replaced by Mark. Key locations and walls are left as they are.
func (r *Report) Overlay() []string {
	mark := r.Mark()
	rows := make([][]rune, r.Grid.Height)
	for y := range rows {
		rows[y] = make([]rune, r.Grid.Width)
		for x := range rows[y] {
			rows[y][x] = r.Grid.At(x, y)
		}
	}
	for _, e := range r.Tree.InOrder() {
		for _, p := range e.Path {
			if r.Grid.IsOpen(p.X, p.Y) {
				rows[p.Y][p.X] = mark
			}
		}
	}

	out := make([]string, len(rows))
	for y, row := range rows {
		out[y] = string(row)
	}
	return out
}

// Point is the JSON form of a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Key is the JSON form of a key location.
type Key struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// Edge is the JSON form of a path edge.
type Edge struct {
	Key    string  `json:"key"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight int     `json:"weight"`
	Path   []Point `json:"path"`
}

// Tree is the JSON form of the spanning tree, keyed by canonical edge key.
type Tree struct {
	Method      string          `json:"method"`
	Root        string          `json:"root"`
	Edges       map[string]Edge `json:"edges"`
	Order       []string        `json:"order"`
	TotalWeight int             `json:"totalWeight"`
	Connected   bool            `json:"connected"`
	Unreached   []string        `json:"unreached"`
}

// Failure is the JSON form of a failed pair search.
type Failure struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Error string `json:"error"`
}

// BreachInfo is the JSON form of a Breach.
type BreachInfo struct {
	ID    string  `json:"id"`
	Walls int     `json:"walls"`
	Path  []Point `json:"path"`
}

// RouteInfo is the JSON form of a visiting route.
type RouteInfo struct {
	Stops    []string `json:"stops"`
	Cost     int      `json:"cost"`
	SeedCost int      `json:"seedCost"`
	Moves    int      `json:"moves"`
	Closed   bool     `json:"closed"`
}

// Summary is the serializable view of a Report.
type Summary struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Keys       []Key        `json:"keys"`
	Edges      []Edge       `json:"edges"`
	Tree       Tree         `json:"tree"`
	Failures   []Failure    `json:"failures,omitempty"`
	Breaches   []BreachInfo `json:"breaches,omitempty"`
	Route      *RouteInfo   `json:"route,omitempty"`
	PathMark   string       `json:"pathMark"`
	Overlay    []string     `json:"overlay"`
	DurationMs float64      `json:"durationMs"`
}

// Summary flattens the report into plain, JSON-friendly values.
func (r *Report) Summary() Summary {
	s := Summary{
		Width:      r.Grid.Width,
		Height:     r.Grid.Height,
		Keys:       make([]Key, len(r.Graph.Nodes)),
		Edges:      make([]Edge, len(r.Graph.Edges)),
		PathMark:   string(r.Mark()),
		Overlay:    r.Overlay(),
		DurationMs: float64(r.Duration.Microseconds()) / 1000.0,
	}
	for i, n := range r.Graph.Nodes {
		s.Keys[i] = Key{ID: n.ID, Symbol: string(n.Symbol), X: n.X, Y: n.Y}
	}
	for i, e := range r.Graph.Edges {
		s.Edges[i] = edgeInfo(e)
	}
	for _, f := range r.Graph.Failures {
		s.Failures = append(s.Failures, Failure{From: f.From.String(), To: f.To.String(), Error: f.Err.Error()})
	}
	for _, b := range r.Breaches {
		s.Breaches = append(s.Breaches, BreachInfo{ID: b.Node.ID, Walls: b.Walls, Path: points(b.Path)})
	}

	if r.Route != nil {
		s.Route = &RouteInfo{
			Stops:    append([]string{}, r.Route.Stops...),
			Cost:     r.Route.Cost,
			SeedCost: r.Route.SeedCost,
			Moves:    r.Route.Moves,
			Closed:   r.Route.Closed,
		}
	}

	s.Tree = Tree{
		Method:      r.Method,
		Root:        r.Tree.Root,
		Edges:       make(map[string]Edge, r.Tree.Len()),
		Order:       append([]string{}, r.Tree.Order...),
		TotalWeight: r.Tree.TotalWeight,
		Connected:   r.Tree.Connected(),
		Unreached:   make([]string, len(r.Tree.Unreached)),
	}
	for k, e := range r.Tree.Edges {
		s.Tree.Edges[k] = edgeInfo(e)
	}
	for i, n := range r.Tree.Unreached {
		s.Tree.Unreached[i] = n.ID
	}
	return s
}

func edgeInfo(e pathgraph.Edge) Edge {
	return Edge{
		Key:    e.Key(),
		From:   e.FromID,
		To:     e.ToID,
		Weight: e.Weight,
		Path:   points(e.Path),
	}
}

func points(ps []gridgraph.Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
