// Command primmst loads a YAML graph file and prints its minimum spanning tree, reachability,
// shortest paths or shape statistics.
//
// Usage:
//
//	primmst mst graph.yaml --start A [--method prim|kruskal] [--forest]
//	primmst reach graph.yaml --start A
//	primmst path graph.yaml --from A --to D
//	primmst stats graph.yaml
//
// The persistent --log-level flag (debug, info, warn, error) controls the structured log
// written to stderr; at debug level Prim traces every heap pop.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
