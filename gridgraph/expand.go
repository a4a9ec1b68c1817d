package gridgraph

import (
	"container/list"
)

// BreachCost finds the minimum number of wall cells that would have to be
// removed to walk from `from` to `to`. Each wall cell crossed costs 1; open
// and key cells cost 0. Returns the walk (including both endpoints) and its
// cost. A cost of 0 means the cells are already connected.
//
// Behavior:
//  1. Validate both endpoints (ErrOutOfBounds).
//  2. 0–1 BFS from `from`:
//     • Moving into a walkable cell → cost 0
//     • Moving into a wall cell     → cost 1
//  3. Stop when `to` is popped.
//  4. Reconstruct the walk via the predecessor slice.
//
// Complexity: O(W·H) time, O(W·H) memory for distance and prev slices.
func (g *Grid) BreachCost(from, to Point) (path []Point, cost int, err error) {
	if !g.InBounds(from.X, from.Y) || !g.InBounds(to.X, to.Y) {
		return nil, 0, ErrOutOfBounds
	}

	n := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	src, dst := g.Index(from.X, from.Y), g.Index(to.X, to.Y)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ux, uy := g.Coordinate(u)
		for _, d := range offsets4 {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			step := 0
			if g.IsWall(vx, vy) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every cell is reachable once walls can be crossed, so dst always has a distance.
	for at := dst; at >= 0; at = prev[at] {
		x, y := g.Coordinate(at)
		path = append(path, Point{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
