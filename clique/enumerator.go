package clique

import (
	"context"
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/cliquer/core"
)

// Enumerator lists the maximal cliques of one graph snapshot.
// It is safe to call All and Run repeatedly; each call is an independent
// enumeration from scratch.
type Enumerator struct {
	adj     map[int]core.VertexSet
	variant Variant
	opts    Options
}

// New snapshots g's adjacency and returns an Enumerator for variant.
// Later changes to g are not observed.
//
// Complexity: O(V+E) for the snapshot.
func New(g *core.Graph, variant Variant, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if variant != Plain && variant != Pivot {
		return nil, fmt.Errorf("clique: New(%s): %w", variant, ErrUnknownVariant)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Enumerator{adj: g.Adjacency(), variant: variant, opts: o}, nil
}

// Variant reports the algorithm flavour.
func (e *Enumerator) Variant() Variant { return e.variant }

// All returns a lazy sequence of maximal cliques. Each clique is a fresh
// sorted slice owned by the consumer. Breaking out of the range loop stops the
// enumeration immediately. A canceled context ends the sequence silently; use
// Run to observe the error.
//
// Enumeration order is unspecified, the set of cliques is not.
func (e *Enumerator) All() iter.Seq[Clique] {
	return func(yield func(Clique) bool) {
		if len(e.adj) == 0 {
			return
		}
		w := e.newWalker(e.opts.Ctx, e.newRand())
		w.emit = yield
		w.expand(nil, e.allVertices(), make(core.VertexSet))
	}
}

// Run enumerates all maximal cliques and returns them in canonical order with
// call statistics. With Workers > 1 top-level branches run concurrently.
// On cancellation Run returns the context error and no partial result.
func (e *Enumerator) Run() (*Result, error) {
	if e.opts.Workers > 1 {
		return e.runParallel()
	}

	res := &Result{Variant: e.variant}
	if len(e.adj) == 0 {
		return res, nil
	}

	w := e.newWalker(e.opts.Ctx, e.newRand())
	w.emit = func(c Clique) bool {
		res.Cliques = append(res.Cliques, c)
		return true
	}
	w.expand(nil, e.allVertices(), make(core.VertexSet))
	if w.err != nil {
		return nil, fmt.Errorf("clique: %s run: %w", e.variant, w.err)
	}

	res.Calls = w.calls
	res.MaxDepth = w.maxDepth
	Canonicalize(res.Cliques)

	return res, nil
}

// Count runs the enumeration and returns the number of maximal cliques.
func (e *Enumerator) Count() (int, error) {
	res, err := e.Run()
	if err != nil {
		return 0, err
	}

	return res.Count(), nil
}

// newWalker builds per-run state. Each run gets its own walker.
func (e *Enumerator) newWalker(ctx context.Context, rng *rand.Rand) *walker {
	return &walker{
		adj:     e.adj,
		variant: e.variant,
		pivot:   e.opts.Pivot,
		rng:     rng,
		obs:     e.opts.Observer,
		ctx:     ctx,
	}
}

// newRand returns the shared rng if one was configured, else a fresh rng
// seeded with opts.Seed so that every run repeats the same pivot choices.
func (e *Enumerator) newRand() *rand.Rand {
	if e.opts.Rand != nil {
		return e.opts.Rand
	}

	return rand.New(rand.NewSource(e.opts.Seed))
}

// allVertices returns P for the root call.
func (e *Enumerator) allVertices() core.VertexSet {
	p := make(core.VertexSet, len(e.adj))
	for v := range e.adj {
		p.Add(v)
	}

	return p
}

// BronKerbosch returns the maximal cliques of g found by the plain variant,
// in canonical order.
func BronKerbosch(g *core.Graph, opts ...Option) ([]Clique, error) {
	return collect(g, Plain, opts...)
}

// BronKerboschPivot returns the maximal cliques of g found by the pivoted
// variant, in canonical order.
func BronKerboschPivot(g *core.Graph, opts ...Option) ([]Clique, error) {
	return collect(g, Pivot, opts...)
}

func collect(g *core.Graph, variant Variant, opts ...Option) ([]Clique, error) {
	e, err := New(g, variant, opts...)
	if err != nil {
		return nil, err
	}
	res, err := e.Run()
	if err != nil {
		return nil, err
	}

	return res.Cliques, nil
}
