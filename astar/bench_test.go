package astar_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/dungeonmst/astar"
	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// BenchmarkFindPath_Serpentine measures A* through a 200×200 zig-zag corridor,
// the worst case for the Manhattan heuristic.
func BenchmarkFindPath_Serpentine(b *testing.B) {
	const n = 200
	lines := make([]string, n)
	for y := 0; y < n; y++ {
		switch {
		case y%4 == 1:
			lines[y] = strings.Repeat("#", n-1) + "."
		case y%4 == 3:
			lines[y] = "." + strings.Repeat("#", n-1)
		default:
			lines[y] = strings.Repeat(".", n)
		}
	}
	g, err := gridgraph.FromStrings(lines, gridgraph.DefaultOptions())
	if err != nil {
		b.Fatalf("setup FromStrings failed: %v", err)
	}
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(context.Background(), g, start, goal)
	}
}
