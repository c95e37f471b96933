// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side takes local indices [0,n1), right side [n1,n1+n2).
//
// Complexity:
//   - Time: O(n1·n2). Space: O(n1·n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) (int, error) {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return 0, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n1*n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				edges = append(edges, core.Edge{U: cfg.id(i), V: cfg.id(n1 + j)})
			}
		}

		return n1 + n2, addEdges(g, methodCompleteBipartite, edges)
	}
}
