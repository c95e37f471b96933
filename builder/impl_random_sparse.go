// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - All n vertices are registered, so isolated draws stay in the graph.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(E).
//
// Determinism:
//   - Trial order is i asc, j asc; fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) (int, error) {
		if n < minRandomSparseVertices {
			return 0, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return 0, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return 0, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)

		var edges []core.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} needs no rng.
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					edges = append(edges, core.Edge{U: cfg.id(i), V: cfg.id(j)})
				}
			}
		}

		return n, addEdges(g, methodRandomSparse, edges)
	}
}
