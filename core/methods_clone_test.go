package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primgraph/core"
)

func TestClone_DeepCopy(t *testing.T) {
	g := square(t)
	c := g.Clone()

	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.Labels(), c.Labels())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	_, err := c.AddEdge(0, 3, 7)
	require.NoError(t, err)
	ok, err := g.AreNeighbors(0, 3)
	require.NoError(t, err)
	assert.False(t, ok, "mutating the clone must not touch the source")
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 5, c.EdgeCount())
}

func TestClone_KeepsCounterAndCursor(t *testing.T) {
	g, err := core.NewLabeledGraph[string](3, nil)
	require.NoError(t, err)
	_, err = g.AddLabel("X")
	require.NoError(t, err)
	// unmatched removal skews the counter
	_, err = g.RemoveEdge(1, 2)
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, -1, c.EdgeCount())
	idx, err := c.AddLabel("Y")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestCloneEmpty(t *testing.T) {
	g := square(t)
	c := g.CloneEmpty()

	assert.Equal(t, 4, c.Size())
	assert.Equal(t, 0, c.EdgeCount())
	assert.Empty(t, c.Edges())
	assert.Equal(t, []string{"A", "B", "C", "D"}, c.Labels())
}

func TestClone_KeepsWeightPolicy(t *testing.T) {
	g, err := core.NewGraph(2, core.WithNonNegativeWeights())
	require.NoError(t, err)

	_, err = g.Clone().AddEdge(0, 1, -1)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestStats(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for _, e := range []core.Edge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 0, Weight: 3}, {From: 2, To: 2, Weight: 0.5}, {From: 1, To: 2, Weight: 4}} {
		_, err = g.AddEdge(e.From, e.To, e.Weight)
		require.NoError(t, err)
	}

	s := g.Stats()
	assert.Equal(t, 5, s.VertexCount)
	assert.Equal(t, 4, s.EdgeCount)
	assert.Equal(t, 4, s.DistinctEdges)
	assert.Equal(t, 1, s.SelfLoops)
	assert.Equal(t, 1, s.Parallel)
	assert.Equal(t, 2, s.Isolated)
	assert.Equal(t, 0.5, s.MinWeight)
	assert.Equal(t, 4.0, s.MaxWeight)
	assert.Equal(t, 9.5, s.TotalWeight)
	assert.False(t, s.NonNegative)
}

func TestStats_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)

	assert.Equal(t, &core.GraphStats{}, g.Stats())
}
