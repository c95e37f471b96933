package clique_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquer/builder"
	"github.com/katalvlaran/cliquer/clique"
	"github.com/katalvlaran/cliquer/core"
)

func TestPivotStrategies_EmptyUnion(t *testing.T) {
	empty := core.NewVertexSet()
	for name, s := range pivotStrategies() {
		_, ok := s.ChoosePivot(empty, empty, nil, rand.New(rand.NewSource(1)))
		assert.False(t, ok, name)
	}
}

func TestPivotStrategies_PickFromUnion(t *testing.T) {
	p := core.NewVertexSet(4, 7)
	x := core.NewVertexSet(2)
	union := p.Union(x)
	rng := rand.New(rand.NewSource(3))
	for name, s := range pivotStrategies() {
		for i := 0; i < 20; i++ {
			u, ok := s.ChoosePivot(p, x, map[int]core.VertexSet{}, rng)
			require.True(t, ok, name)
			assert.True(t, union.Has(u), "%s picked %d outside P∪X", name, u)
		}
	}
}

func TestFirstPivot_Smallest(t *testing.T) {
	u, ok := clique.FirstPivot().ChoosePivot(core.NewVertexSet(9, 5), core.NewVertexSet(6), nil, nil)
	require.True(t, ok)
	assert.Equal(t, 5, u)
}

func TestMaxDegreePivot_MostNeighboursInP(t *testing.T) {
	// Star hub 0 with leaves 1..4 plus a pendant 5-1.
	g, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)
	require.NoError(t, g.AddEdges(core.Edge{U: 1, V: 5}))

	adj := g.Adjacency()
	p := core.NewVertexSet(g.Vertices()...)
	u, ok := clique.MaxDegreePivot().ChoosePivot(p, core.NewVertexSet(), adj, nil)
	require.True(t, ok)
	assert.Equal(t, 0, u)

	// Ties resolve to the smallest id.
	u, ok = clique.MaxDegreePivot().ChoosePivot(core.NewVertexSet(3, 4), core.NewVertexSet(), adj, nil)
	require.True(t, ok)
	assert.Equal(t, 3, u)
}

func TestRandomPivot_SeededIsReproducible(t *testing.T) {
	p := core.NewVertexSet(1, 2, 3, 4, 5, 6, 7, 8)
	x := core.NewVertexSet(10, 11)
	draw := func() []int {
		rng := rand.New(rand.NewSource(77))
		out := make([]int, 10)
		for i := range out {
			out[i], _ = clique.RandomPivot().ChoosePivot(p, x, nil, rng)
		}
		return out
	}
	assert.Equal(t, draw(), draw())
}

func TestCustomPivotFunc(t *testing.T) {
	// Always pick the largest id; the clique set must not change.
	largest := clique.PivotFunc(func(p, x core.VertexSet, _ map[int]core.VertexSet, _ *rand.Rand) (int, bool) {
		u := p.Union(x).Sorted()
		if len(u) == 0 {
			return 0, false
		}
		return u[len(u)-1], true
	})

	g := randomGraph(t, 14, 0.5, 5)
	want, err := clique.BronKerbosch(g)
	require.NoError(t, err)
	got, err := clique.BronKerboschPivot(g, clique.WithPivot(largest))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParsePivot(t *testing.T) {
	for _, name := range []string{"random", "", "maxdegree", "Max-Degree", "tomita", "first"} {
		s, err := clique.ParsePivot(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}

	_, err := clique.ParsePivot("median")
	assert.ErrorIs(t, err, clique.ErrUnknownPivot)
}
