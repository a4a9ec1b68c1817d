package gridgraph

// Regions labels every walkable cell with the id of its 4-connected region
// and every wall cell with -1. The slice is indexed row-major (see Index).
// Region ids are assigned in row-major order of each region's first cell,
// starting at 0. Two cells with different labels cannot reach each other.
//
// Time:   O(W·H).
// Memory: O(W·H) for labels and the BFS queue.
func (g *Grid) Regions() []int {
	total := g.Width * g.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsWall(x, y) {
				continue
			}
			i0 := g.Index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to flood the region
			queue := []int{i0}
			labels[i0] = next
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range offsets4 {
					vx, vy := ux+d[0], uy+d[1]
					if !g.Walkable(vx, vy) {
						continue
					}
					vi := g.Index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = next
						queue = append(queue, vi)
					}
				}
			}
			next++
		}
	}

	return labels
}

// RegionCount returns the number of distinct walkable regions.
func (g *Grid) RegionCount() int {
	top := -1
	for _, l := range g.Regions() {
		if l > top {
			top = l
		}
	}

	return top + 1
}
