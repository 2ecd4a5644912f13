package bfs_test

import (
	"testing"

	"github.com/katalvlaran/primgraph/bfs"
	"github.com/katalvlaran/primgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N + 1)
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
