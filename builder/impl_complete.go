// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//   • Space: O(n²) for the edge batch.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) (int, error) {
		if n < minCompleteNodes {
			return 0, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)

		edges := make([]core.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, core.Edge{U: cfg.id(i), V: cfg.id(j)})
			}
		}

		return n, addEdges(g, methodComplete, edges)
	}
}
