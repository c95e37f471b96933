// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)—i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) (int, error) {
		if n < minPathNodes {
			return 0, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, core.Edge{U: cfg.id(i - 1), V: cfg.id(i)})
		}

		return n, addEdges(g, methodPath, edges)
	}
}
