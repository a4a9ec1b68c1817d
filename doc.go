// Package dungeonmst connects the items of a 2D dungeon map.
//
// A map is a rectangular grid of symbols: open floor ('.' by default), walls
// ('#' by default) and anything else, which marks a key location (an item).
// The pipeline finds the shortest walk between every pair of key locations
// and reduces that complete graph to a minimum spanning tree, the smallest
// set of walks that still reaches every item.
//
// Packages, leaf first:
//
//	gridgraph/     immutable grid, key-location scan, walkable regions, wall breaches
//	astar/         4-directional A* with a Manhattan heuristic
//	pathgraph/     concurrent all-pairs path graph over key locations
//	prim_kruskal/  minimum spanning tree (Prim, Kruskal cross-check)
//	tsp/           visiting route over the tree (double-tree seed + 2-opt)
//	explorer/      the pipeline, logging and report
//	api/           gin HTTP front
//	cmd/dungeonmst  command-line tool and server entry point
//
// Quick start:
//
//	e, _ := explorer.New(explorer.DefaultConfig(), nil)
//	report, err := e.Run(ctx, []string{
//		"#####",
//		"#A..#",
//		"#...#",
//		"#..B#",
//		"#####",
//	})
//	// report.Tree.Edges["A-B"].Weight == 4
//
// Unreachable items are data, not errors: the tree is partial and lists
// them in Unreached, and the report says how many walls stand in the way.
package dungeonmst
