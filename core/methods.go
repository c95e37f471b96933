// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: graph construction (AddEdges, AddVertex) and read-only queries.
// Concurrency:
//   - Mutators take mu.Lock; queries take mu.RLock.
// Determinism:
//   - Vertices() and Edges() are sorted; Neighbors() returns an unordered set copy.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

const methodAddEdges = "AddEdges"

// AddEdges inserts every pair as an undirected edge: v joins neighbors(u)
// and u joins neighbors(v). Re-inserting an existing edge is a no-op.
//
// The batch is validated before any insertion: if a pair is a self-loop the
// call returns ErrLoopNotAllowed and the graph is left unchanged.
//
// Complexity: O(len(pairs)) time.
func (g *Graph) AddEdges(pairs ...Edge) error {
	for i, e := range pairs {
		if e.U == e.V {
			return fmt.Errorf("%s: pair %d (%s): %w", methodAddEdges, i, e, ErrLoopNotAllowed)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range pairs {
		nu := g.ensureVertex(e.U)
		nv := g.ensureVertex(e.V)
		if _, dup := nu[e.V]; dup {
			continue
		}
		nu[e.V] = struct{}{}
		nv[e.U] = struct{}{}
		g.edgeCount++
	}

	return nil
}

// AddVertex registers v with an empty neighbour set if it is absent.
// Complexity: O(1).
func (g *Graph) AddVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// ensureVertex returns the adjacency bucket of v, creating it if needed.
// Caller must hold mu for writing.
func (g *Graph) ensureVertex(v int) VertexSet {
	nb, ok := g.adjacency[v]
	if !ok {
		nb = make(VertexSet)
		g.adjacency[v] = nb
	}

	return nb
}

// HasVertex reports whether v is a key of the adjacency map.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]
	return ok
}

// HasEdge reports whether a and b are adjacent. Absent vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[a].Has(b)
}

// Neighbors returns a copy of the neighbour set of v.
// An absent v is treated as isolated and yields an empty, non-nil set.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) VertexSet {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[v].Clone()
}

// Degree returns |neighbors(v)|, 0 for an absent vertex.
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v])
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns |E| (each undirected edge counted once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Edges returns every undirected edge once, as {U<V}, sorted by (U,V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nb := range g.adjacency {
		for v := range nb {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	})

	return out
}
