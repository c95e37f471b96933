// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphStats declarations, sentinel errors and constructors.
// Policy:
//   - Vertices are plain ints; the empty Graph is a valid graph.
//   - No hidden globals; every Graph owns its adjacency map.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrLoopNotAllowed indicates an edge (v,v) was passed to AddEdges.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an unordered vertex pair {U,V}.
type Edge struct {
	U int
	V int
}

// String renders the pair as "U-V".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// GraphOption configures a Graph before any edge is added.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the adjacency map for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[int]VertexSet, n)
		}
	}
}

// Graph is an undirected simple graph stored as adjacency sets.
//
// mu guards adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	// adjacency[v] is the neighbour set of v; every known vertex has an entry.
	adjacency map[int]VertexSet

	// edgeCount is the number of distinct undirected edges.
	edgeCount int
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	VertexCount   int `json:"vertices" yaml:"vertices"`
	EdgeCount     int `json:"edges" yaml:"edges"`
	IsolatedCount int `json:"isolated" yaml:"isolated"`
	MaxDegree     int `json:"max_degree" yaml:"max_degree"`
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus option cost.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[int]VertexSet)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewGraphFromEdges builds a Graph from pairs in one call.
// Returns ErrLoopNotAllowed (wrapped) if any pair is a self-loop.
func NewGraphFromEdges(pairs []Edge, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if err := g.AddEdges(pairs...); err != nil {
		return nil, err
	}

	return g, nil
}
