// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
	"github.com/katalvlaran/primgraph/dijkstra"
	"github.com/katalvlaran/primgraph/prim_kruskal"
)

// ExampleDijkstra_triangle contrasts the shortest-path tree with Prim's tree on the
// triangle A–B(1), B–C(1), A–C(1.5).
func ExampleDijkstra_triangle() {
	labels := []string{"A", "B", "C"}
	g, _ := core.NewLabeledGraph(3, labels)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(0, 2, 1.5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pred, _ := prim_kruskal.Prim(g, "A")

	for v := 1; v < len(labels); v++ {
		fmt.Printf("%s: dist=%.1f spt-parent=%s mst-parent=%s\n",
			labels[v], dist[v], labels[prev[v]], labels[pred[v]])
	}
	// Output:
	// B: dist=1.0 spt-parent=A mst-parent=A
	// C: dist=1.5 spt-parent=A mst-parent=B
}
