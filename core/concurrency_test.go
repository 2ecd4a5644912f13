// Package core_test verifies that read-only core.Graph access is safe from several goroutines
// and that clones can be mutated independently. Run with -race.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primgraph/core"
)

// TestConcurrentReaders runs Neighbors, Edges and Weight on a shared graph that nobody mutates.
func TestConcurrentReaders(t *testing.T) {
	g := square(t)
	want := g.Edges()

	const readers = 32
	var wg sync.WaitGroup
	errs := make([]error, readers)
	counts := make([]int, readers)
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			for v := range g.Vertices() {
				nbrs, err := g.Neighbors(v)
				if err != nil {
					errs[id] = err
					return
				}
				counts[id] += len(nbrs)
			}
			if _, _, err := g.Weight(0, 2); err != nil {
				errs[id] = err
			}
		}(i)
	}
	wg.Wait()

	// no *testing.T inside goroutines
	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, 2*len(want), counts[i])
	}
	require.Equal(t, want, g.Edges())
}

// TestConcurrentClones mutates one clone per goroutine; the source must stay unchanged.
func TestConcurrentClones(t *testing.T) {
	g := square(t)
	want := g.Edges()

	const workers = 16
	var wg sync.WaitGroup
	clones := make([]*core.Graph[string], workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			c := g.Clone()
			_, _ = c.AddEdge(id%4, (id+1)%4, float64(id))
			_, _ = c.RemoveEdge(0, 2)
			clones[id] = c
		}(i)
	}
	wg.Wait()

	require.Equal(t, want, g.Edges())
	require.Equal(t, 4, g.EdgeCount())
	for _, c := range clones {
		require.Equal(t, 4, c.EdgeCount())
		ok, err := c.AreNeighbors(0, 2)
		require.NoError(t, err)
		require.False(t, ok)
	}
}
