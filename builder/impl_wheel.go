// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); W_4 is K_4.
//   - Local index 0 is the hub; 1..n-1 form the rim cycle.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) (int, error) {
		if n < minWheelNodes {
			return 0, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		hub := cfg.id(0)
		rim := n - 1
		edges := make([]core.Edge, 0, 2*rim)
		for i := 0; i < rim; i++ {
			u := cfg.id(1 + i)
			v := cfg.id(1 + (i+1)%rim)
			edges = append(edges, core.Edge{U: u, V: v}, core.Edge{U: hub, V: u})
		}

		return n, addEdges(g, methodWheel, edges)
	}
}
