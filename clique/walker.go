package clique

import (
	"context"
	"math/rand"
	"slices"

	"github.com/katalvlaran/cliquer/core"
)

// walker carries the read-only adjacency and per-run state through one
// Bron–Kerbosch recursion. It is owned by a single goroutine.
type walker struct {
	adj     map[int]core.VertexSet // read-only snapshot shared by all frames
	variant Variant
	pivot   PivotStrategy
	rng     *rand.Rand
	obs     Observer
	ctx     context.Context

	// emit receives every maximal clique; returning false stops the walk.
	emit func(Clique) bool

	calls    int64
	maxDepth int
	err      error // context error that aborted the walk, if any
}

// expand is one Bron–Kerbosch call on (R, P, X). p and x are owned by this
// frame and mutated in place; children receive fresh intersections.
// It returns false once the walk must stop (consumer break or cancellation).
func (w *walker) expand(r []int, p, x core.VertexSet) bool {
	if err := w.ctx.Err(); err != nil {
		w.err = err
		return false
	}

	w.calls++
	depth := len(r)
	if depth > w.maxDepth {
		w.maxDepth = depth
	}
	if w.obs != nil {
		w.obs.OnCall(w.variant, depth)
	}

	// Base case. With X non-empty, R could still grow by an excluded vertex.
	if len(p) == 0 {
		if len(x) == 0 {
			return w.report(r)
		}
		return true
	}

	var nv core.VertexSet
	for _, v := range w.candidates(p, x) {
		nv = w.adj[v]
		// Full slice expression: siblings must never share R's backing array.
		if !w.expand(append(r[:len(r):len(r)], v), p.Intersect(nv), x.Intersect(nv)) {
			return false
		}
		p.Remove(v)
		x.Add(v)
	}

	return true
}

// candidates returns the vertices to branch on, ascending.
func (w *walker) candidates(p, x core.VertexSet) []int {
	if w.variant == Plain {
		return p.Sorted()
	}

	u, ok := w.pivot.ChoosePivot(p, x, w.adj, w.rng)
	if !ok {
		return p.Sorted()
	}

	return p.Difference(w.adj[u]).Sorted()
}

// report copies R into a sorted Clique and hands it to emit.
func (w *walker) report(r []int) bool {
	c := make(Clique, len(r))
	copy(c, r)
	slices.Sort(c)
	if w.obs != nil {
		w.obs.OnClique(w.variant, len(c))
	}

	return w.emit(c)
}
