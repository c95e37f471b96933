// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// impl_isolated.go - implementation of Isolated(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodIsolated   = "Isolated"
	minIsolatedNodes = 1
)

// Isolated returns a Constructor that adds n vertices without edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) (int, error) {
		if n < minIsolatedNodes {
			return 0, fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)

		return n, nil
	}
}
