package astar

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// unseen marks a cell that has not been discovered yet.
const unseen = -1

// entry is one open-set record. Identity is the cell index; ranking is
// (f, seq) only, so two entries for different cells never compare equal.
type entry struct {
	idx int    // row-major cell index
	g   int    // steps from start
	h   int    // Manhattan estimate to goal
	seq uint64 // discovery order, breaks f ties
}

func (e entry) f() int { return e.g + e.h }

// lessEntry orders the open set by f, then by discovery order.
func lessEntry(a, b entry) bool {
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	return a.seq < b.seq
}

// searchState is the per-search bookkeeping: cost-so-far and predecessor
// links stored as indices into the grid (arena style), expansion flags and
// the open set. It is created by FindPath and discarded when it returns.
type searchState struct {
	grid   *gridgraph.Grid
	goal   gridgraph.Point
	g      []int  // best known steps from start, unseen if never discovered
	prev   []int  // predecessor index, -1 for the start
	closed []bool // expanded cells
	open   *heap.Heap[entry]
	seq    uint64
}

func newSearchState(grid *gridgraph.Grid, goal gridgraph.Point) *searchState {
	n := grid.Width * grid.Height
	g := make([]int, n)
	prev := make([]int, n)
	for i := range g {
		g[i] = unseen
		prev[i] = -1
	}

	return &searchState{
		grid:   grid,
		goal:   goal,
		g:      g,
		prev:   prev,
		closed: make([]bool, n),
		open:   heap.New[entry](lessEntry),
	}
}

// discover records (x,y) with cost g reached from `from` and pushes it.
func (s *searchState) discover(x, y, g, from int) {
	idx := s.grid.Index(x, y)
	s.g[idx] = g
	s.prev[idx] = from
	s.open.Push(entry{
		idx: idx,
		g:   g,
		h:   Manhattan(gridgraph.Point{X: x, Y: y}, s.goal),
		seq: s.seq,
	})
	s.seq++
}

// next pops the best live entry, dropping entries superseded by a cheaper
// rediscovery of the same cell.
func (s *searchState) next() (entry, bool) {
	for {
		e, ok := s.open.Pop()
		if !ok {
			return entry{}, false
		}
		if s.closed[e.idx] || e.g > s.g[e.idx] {
			continue
		}
		s.closed[e.idx] = true
		return e, true
	}
}

// canEnter reports whether (x,y) may be (re)discovered with cost g: it must
// be walkable, not yet expanded, and either unseen or strictly improved.
func (s *searchState) canEnter(x, y, g int) bool {
	if !s.grid.Walkable(x, y) {
		return false
	}
	idx := s.grid.Index(x, y)
	if s.closed[idx] {
		return false
	}
	return s.g[idx] == unseen || g < s.g[idx]
}

// reconstruct walks predecessor links from idx back to the start and
// returns the path in start..goal order.
func (s *searchState) reconstruct(idx int) Path {
	var path Path
	for at := idx; at >= 0; at = s.prev[at] {
		x, y := s.grid.Coordinate(at)
		path = append(path, gridgraph.Point{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
