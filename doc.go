// Package primgraph is an in-memory toolkit for weighted, undirected graphs over dense
// vertex indices, built around Prim's minimum spanning tree algorithm.
//
// What is in the box:
//
//	core/         Graph[L]: adjacency list over indices 0..n-1 with attached labels
//	prim_kruskal/ Prim (lazy decrease-key min-heap, predecessor slice) and Kruskal
//	bfs/          breadth-first reachability and hop depths
//	dfs/          depth-first walk, connected components, cycle detection
//	dijkstra/     shortest-path tree from one source, for contrast with Prim
//	builder/      path, cycle, star, complete, grid and random graph generators
//	graphfile/    YAML graph documents to and from Graph values
//	cmd/primmst/  command-line front end over graph files
//
// Quick start:
//
//	g, _ := core.NewLabeledGraph(4, []string{"A", "B", "C", "D"})
//	g.AddEdge(3, 1, 1) // D–B
//	g.AddEdge(1, 0, 1) // B–A
//	g.AddEdge(0, 2, 1) // A–C
//	g.AddEdge(2, 3, 5) // C–D
//
//	pred, _ := prim_kruskal.Prim(g, "A")
//	// pred == [-1 0 0 1]: B and C hang off A, D hangs off B.
//
// Conventions shared by every package:
//
//   - Vertex indices are validated on every call; a bad index yields *core.IndexOutOfRangeError.
//   - Sentinel errors carry a package prefix and are matched with errors.Is / errors.As.
//   - Behavior is tuned with functional options; defaults never log.
//   - A Graph is not safe for concurrent mutation; concurrent reads of an unchanging Graph are.
package primgraph
