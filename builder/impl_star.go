// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Local index 0 is the hub; leaves are 1..n-1.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) (int, error) {
		if n < minStarNodes {
			return 0, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := cfg.id(0)
		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, core.Edge{U: hub, V: cfg.id(i)})
		}

		return n, addEdges(g, methodStar, edges)
	}
}
