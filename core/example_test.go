package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// ExampleGraph demonstrates creation, mutation, and queries on a labelled graph.
func ExampleGraph() {
	// 1) Five labelled vertices A..E.
	g, _ := core.NewLabeledGraph(5, []string{"A", "B", "C", "D", "E"})

	// 2) Edges are added by index.
	g.AddEdge(0, 1, 25) // A–B
	g.AddEdge(0, 2, 12) // A–C
	g.AddEdge(1, 3, 16) // B–D
	g.AddEdge(1, 4, 22) // B–E
	g.AddEdge(2, 4, 31) // C–E
	g.AddEdge(2, 3, 10) // C–D

	// 3) Inspect.
	nbrs, _ := g.Neighbors(0)
	fmt.Println("A's neighbors:", nbrs)
	adj, _ := g.AreNeighbors(0, 2)
	fmt.Println("A and C adjacent?", adj)
	w, _, _ := g.Weight(2, 4)
	fmt.Println("C–E weight:", w)
	b, _ := g.FindNode("B")
	fmt.Println("index of B:", b, "edges:", g.EdgeCount())

	// 4) Remove B–E.
	g.RemoveEdge(1, 4)
	adj, _ = g.AreNeighbors(1, 4)
	fmt.Println("B and E adjacent?", adj, "edges:", g.EdgeCount())

	// Output:
	// A's neighbors: [{1 25} {2 12}]
	// A and C adjacent? true
	// C–E weight: 31
	// index of B: 1 edges: 6
	// B and E adjacent? false edges: 5
}

// ExampleGraph_AddLabel shows the label cursor filling an identity-labelled graph.
func ExampleGraph_AddLabel() {
	g, _ := core.NewGraph(2)
	fmt.Println(g.Labels())

	g.AddLabel(100)
	g.AddLabel(200)
	_, err := g.AddLabel(300)
	fmt.Println(g.Labels(), errors.Is(err, core.ErrGraphFull))

	// Output:
	// [0 1]
	// [100 200] true
}
