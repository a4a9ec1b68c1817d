package tsp

// twoOpt runs deterministic first-improvement 2-opt on tour in place and
// returns the number of accepted moves and the cost change.
//
// For a, b, c, d = T[i-1], T[i], T[k], T[k+1] reversing [i..k] changes the
// cost by Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d). When k is the last stop of
// an open route there is no d and the last two terms drop out. A closed tour
// keeps its repeated start at the end, so k stops one short of it.
//
// Moves that would use a missing distance are rejected; only Δ < 0 is
// accepted, after which the scan restarts.
//
// Complexity: O(n²) per pass.
func twoOpt(dist [][]int, tour []int, closed bool, maxIters int) (moves, delta int) {
	last := len(tour) - 1
	hi := last
	if closed {
		hi = last - 1
	}

	for {
		improved := false
		for i := 1; i < hi && !improved; i++ {
			for k := i + 1; k <= hi; k++ {
				a, b, c := tour[i-1], tour[i], tour[k]
				wac := dist[a][c]
				if wac == noEdge {
					continue
				}
				d := wac - dist[a][b]
				if k < last {
					next := tour[k+1]
					wbd := dist[b][next]
					if wbd == noEdge {
						continue
					}
					d += wbd - dist[c][next]
				}
				if d >= 0 {
					continue
				}

				reverseArcInPlace(tour, i, k)
				delta += d
				moves++
				improved = true
				break
			}
		}
		if !improved || (maxIters > 0 && moves >= maxIters) {
			return moves, delta
		}
	}
}
