package clique

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cliquer/core"
)

// branch is one top-level child call: R = {v}, with its own P and X.
type branch struct {
	v    int
	p, x core.VertexSet
	seed int64
}

// runParallel performs the root call sequentially and expands its children
// on up to opts.Workers goroutines.
//
// A child's P and X depend only on the siblings before it (they were moved
// from P to X), so all branches can be derived up front. Each branch owns
// its sets and an rng seeded from the root rng in branch order.
func (e *Enumerator) runParallel() (*Result, error) {
	res := &Result{Variant: e.variant}
	if len(e.adj) == 0 {
		return res, nil
	}
	if err := e.opts.Ctx.Err(); err != nil {
		return nil, fmt.Errorf("clique: %s run: %w", e.variant, err)
	}

	root := e.newWalker(e.opts.Ctx, e.newRand())
	root.calls = 1
	if root.obs != nil {
		root.obs.OnCall(e.variant, 0)
	}

	p := e.allVertices()
	x := make(core.VertexSet)
	var branches []branch
	for _, v := range root.candidates(p, x) {
		nv := e.adj[v]
		branches = append(branches, branch{
			v:    v,
			p:    p.Intersect(nv),
			x:    x.Intersect(nv),
			seed: root.rng.Int63(),
		})
		p.Remove(v)
		x.Add(v)
	}

	found := make([][]Clique, len(branches))
	walkers := make([]*walker, len(branches))

	g, gctx := errgroup.WithContext(e.opts.Ctx)
	g.SetLimit(e.opts.Workers)
	for i, b := range branches {
		g.Go(func() error {
			w := e.newWalker(gctx, rand.New(rand.NewSource(b.seed)))
			w.emit = func(c Clique) bool {
				found[i] = append(found[i], c)
				return true
			}
			w.expand([]int{b.v}, b.p, b.x)
			walkers[i] = w

			return w.err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("clique: %s run: %w", e.variant, err)
	}

	res.Calls = root.calls
	for i, w := range walkers {
		res.Calls += w.calls
		if w.maxDepth > res.MaxDepth {
			res.MaxDepth = w.maxDepth
		}
		res.Cliques = append(res.Cliques, found[i]...)
	}
	Canonicalize(res.Cliques)

	return res, nil
}
