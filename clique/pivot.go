package clique

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/cliquer/core"
)

// PivotStrategy picks the pivot u from P ∪ X.
//
// Any member of P ∪ X yields the same clique set; strategies only trade off
// the number of recursive calls. ok is false iff P ∪ X is empty, in which case
// the caller branches on all of P.
type PivotStrategy interface {
	ChoosePivot(p, x core.VertexSet, adj map[int]core.VertexSet, rng *rand.Rand) (u int, ok bool)
}

// PivotFunc adapts a plain function to PivotStrategy.
type PivotFunc func(p, x core.VertexSet, adj map[int]core.VertexSet, rng *rand.Rand) (int, bool)

// ChoosePivot calls f.
func (f PivotFunc) ChoosePivot(p, x core.VertexSet, adj map[int]core.VertexSet, rng *rand.Rand) (int, bool) {
	return f(p, x, adj, rng)
}

// RandomPivot picks u uniformly from P ∪ X. The union is sorted before the
// draw so a seeded rng gives reproducible pivots.
func RandomPivot() PivotStrategy {
	return PivotFunc(func(p, x core.VertexSet, _ map[int]core.VertexSet, rng *rand.Rand) (int, bool) {
		union := p.Union(x).Sorted()
		if len(union) == 0 {
			return 0, false
		}
		if rng == nil {
			return union[0], true
		}

		return union[rng.Intn(len(union))], true
	})
}

// MaxDegreePivot picks the u maximising |P ∩ N(u)| (Tomita–Tanaka–Takahashi),
// which minimises |P \ N(u)|. Ties go to the smallest id.
func MaxDegreePivot() PivotStrategy {
	return PivotFunc(func(p, x core.VertexSet, adj map[int]core.VertexSet, _ *rand.Rand) (int, bool) {
		var (
			best  int
			score = -1
		)
		for _, u := range p.Union(x).Sorted() {
			c := 0
			for w := range adj[u] {
				if p.Has(w) {
					c++
				}
			}
			if c > score {
				best, score = u, c
			}
		}

		return best, score >= 0
	})
}

// FirstPivot picks the smallest id in P ∪ X.
func FirstPivot() PivotStrategy {
	return PivotFunc(func(p, x core.VertexSet, _ map[int]core.VertexSet, _ *rand.Rand) (int, bool) {
		var (
			best  int
			found bool
		)
		for _, s := range []core.VertexSet{p, x} {
			for v := range s {
				if !found || v < best {
					best, found = v, true
				}
			}
		}

		return best, found
	})
}

// ParsePivot maps "random", "maxdegree" or "first" to a strategy.
func ParsePivot(name string) (PivotStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "":
		return RandomPivot(), nil
	case "maxdegree", "max-degree", "tomita":
		return MaxDegreePivot(), nil
	case "first":
		return FirstPivot(), nil
	default:
		return nil, fmt.Errorf("clique: pivot %q: %w", name, ErrUnknownPivot)
	}
}
