package clique_test

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquer/builder"
	"github.com/katalvlaran/cliquer/clique"
	"github.com/katalvlaran/cliquer/core"
)

// graphOf builds a graph from literal pairs plus optional isolated vertices.
func graphOf(t testing.TB, pairs [][2]int, isolated ...int) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, core.Edge{U: p[0], V: p[1]})
	}
	g, err := core.NewGraphFromEdges(edges)
	require.NoError(t, err)
	for _, v := range isolated {
		g.AddVertex(v)
	}

	return g
}

// randomGraph samples G(n,p) deterministically.
func randomGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// bruteForce lists maximal cliques by testing every vertex subset.
// Only usable for small graphs (n ≤ ~14).
func bruteForce(g *core.Graph) []clique.Clique {
	vs := g.Vertices()
	var out []clique.Clique
	for mask := 1; mask < 1<<len(vs); mask++ {
		var c clique.Clique
		for i, v := range vs {
			if mask&(1<<i) != 0 {
				c = append(c, v)
			}
		}
		if clique.IsMaximal(g, c) {
			out = append(out, c)
		}
	}

	return clique.Canonicalize(out)
}

// collectSeq drains a lazy sequence into canonical order.
func collectSeq(e *clique.Enumerator) []clique.Clique {
	var out []clique.Clique
	for c := range e.All() {
		out = append(out, c)
	}

	return clique.Canonicalize(out)
}

// countingObserver tallies callbacks; safe for concurrent use.
type countingObserver struct {
	calls   atomic.Int64
	cliques atomic.Int64
	maxSize atomic.Int64
}

func (o *countingObserver) OnCall(_ clique.Variant, _ int) { o.calls.Add(1) }

func (o *countingObserver) OnClique(_ clique.Variant, size int) {
	o.cliques.Add(1)
	for {
		cur := o.maxSize.Load()
		if int64(size) <= cur || o.maxSize.CompareAndSwap(cur, int64(size)) {
			return
		}
	}
}

// pivotStrategies lists every built-in strategy by name.
func pivotStrategies() map[string]clique.PivotStrategy {
	return map[string]clique.PivotStrategy{
		"random":    clique.RandomPivot(),
		"maxdegree": clique.MaxDegreePivot(),
		"first":     clique.FirstPivot(),
	}
}

// newRand returns a seeded rng.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
