package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dungeonmst/gridgraph"
	"github.com/katalvlaran/dungeonmst/pathgraph"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
	"github.com/katalvlaran/dungeonmst/tsp"
)

// ExamplePlan visits every item of a T-shaped corridor, starting at A.
func ExamplePlan() {
	grid, _ := gridgraph.FromStrings([]string{
		"A..B..C",
		"###.###",
		"###D###",
	}, gridgraph.DefaultOptions())
	g, _ := pathgraph.Build(context.Background(), grid, grid.KeyLocations())
	tree, _ := prim_kruskal.Prim(g)

	route, err := tsp.Plan(g, tree)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(route.Stops, route.Cost)
	// Output: [A B D C] 10
}
