// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor owns a contiguous index block [base, base+size); BuildGraph
//     advances base by the size the constructor reports, which makes composition a
//     disjoint union.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

// Constructor adds one topology to g using the resolved builderConfig and
// returns the number of indices it consumed. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw vertex ids only via cfg.id(i) for i in [0, size).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) (size int, err error)

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		size, err := fn(g, cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		cfg.base += size
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
// Intended for tests, examples and benchmarks only.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// addVertices registers ids cfg.id(0..n-1) so that edge-free fixtures keep
// their vertices.
func addVertices(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.id(i))
	}
}

// addEdges inserts a batch and wraps a core failure with method context.
func addEdges(g *core.Graph, method string, edges []core.Edge) error {
	if err := g.AddEdges(edges...); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
