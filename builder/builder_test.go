package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primgraph/builder"
	"github.com/katalvlaran/primgraph/core"
	"github.com/katalvlaran/primgraph/prim_kruskal"
)

func build(t *testing.T, c builder.Constructor, opts ...builder.BuilderOption) *core.Graph[int] {
	t.Helper()
	g, err := builder.BuildGraph(nil, opts, c)
	require.NoError(t, err)

	return g
}

func TestTopologies_Counts(t *testing.T) {
	cases := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(6), 6, 6},
		{"star", builder.Star(4), 4, 3},
		{"complete", builder.Complete(5), 5, 10},
		{"complete single", builder.Complete(1), 1, 0},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"random p=0", builder.RandomSparse(6, 0), 6, 0},
		{"random p=1", builder.RandomSparse(6, 1), 6, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.cons)
			assert.Equal(t, tc.vertices, g.Size())
			assert.Equal(t, tc.vertices, tc.cons.Order())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Len(t, g.Edges(), tc.edges)
		})
	}
}

func TestCycle_EdgeOrder(t *testing.T) {
	g := build(t, builder.Cycle(4))
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1},
	}, g.Edges())

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 1, Weight: 1}, {To: 3, Weight: 1}}, nbrs)
}

func TestGrid_Index(t *testing.T) {
	g := build(t, builder.Grid(2, 3))
	// (0,1) touches (0,0), (0,2) and (1,1)
	deg, err := g.Degree(builder.GridIndex(0, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	ok, err := g.AreNeighbors(builder.GridIndex(0, 2, 3), builder.GridIndex(1, 2, 3))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParameterErrors(t *testing.T) {
	for _, c := range []builder.Constructor{
		builder.Path(1), builder.Cycle(2), builder.Star(1),
		builder.Complete(0), builder.Grid(0, 3), builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, nil, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, c.Method())
	}

	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, builder.Constructor{})
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a := build(t, builder.RandomSparse(30, 0.2), builder.WithSeed(7), builder.WithWeightFn(builder.IntegerWeightFn(1, 9)))
	b := build(t, builder.RandomSparse(30, 0.2), builder.WithRand(rand.New(rand.NewSource(7))), builder.WithWeightFn(builder.IntegerWeightFn(1, 9)))
	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 4)(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(3, 4)(rng)
		assert.True(t, w >= 3 && w < 4, "w=%g", w)
	}

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.IntegerWeightFn(-1, 2) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestNonNegativePolicyApplies(t *testing.T) {
	neg := builder.WeightFn(func(*rand.Rand) float64 { return -1 })
	_, err := builder.BuildGraph([]core.GraphOption{core.WithNonNegativeWeights()}, []builder.BuilderOption{builder.WithWeightFn(neg)}, builder.Path(3))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestPrimOnBuiltGraphs(t *testing.T) {
	// unit weights: every spanning tree weighs n-1
	for _, c := range []builder.Constructor{builder.Cycle(9), builder.Complete(7), builder.Grid(4, 5), builder.Star(6)} {
		g := build(t, c)
		pred, err := prim_kruskal.PrimFromIndex(g, 0)
		require.NoError(t, err, c.Method())
		assert.Equal(t, 1, prim_kruskal.Roots(pred), c.Method())

		total, err := prim_kruskal.TreeWeight(g, pred)
		require.NoError(t, err)
		assert.Equal(t, float64(c.Order()-1), total, c.Method())
	}
}
