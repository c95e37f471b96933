// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i—(i+1) mod n in ascending i; the last edge closes the ring.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) (int, error) {
		if n < minCycleNodes {
			return 0, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, core.Edge{U: cfg.id(i), V: cfg.id((i + 1) % n)})
		}

		return n, addEdges(g, methodCycle, edges)
	}
}
