// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only snapshots over a built Graph (Stats, Adjacency, Clone).
// Policy:
//   - No algorithms here beyond single passes over the adjacency map.
//   - Every snapshot is a deep copy; callers may keep it after the graph changes.

package core

// Stats produces a read-only snapshot of graph sizes.
//
// Complexity: O(V) time, O(1) space.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	for _, nb := range g.adjacency {
		if len(nb) == 0 {
			stats.IsolatedCount++
		}
		if len(nb) > stats.MaxDegree {
			stats.MaxDegree = len(nb)
		}
	}

	return stats
}

// Adjacency returns a deep copy of the vertex → neighbour-set map.
//
// Algorithms take this snapshot once and pass it down as an explicit
// read-only dependency, so they never hold the graph lock while recursing.
//
// Complexity: O(V+E) time and space.
func (g *Graph) Adjacency() map[int]VertexSet {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]VertexSet, len(g.adjacency))
	for v, nb := range g.adjacency {
		out[v] = nb.Clone()
	}

	return out
}

// Clone returns an independent Graph with the same vertices and edges.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	adj := g.Adjacency()

	g.mu.RLock()
	edges := g.edgeCount
	g.mu.RUnlock()

	return &Graph{adjacency: adj, edgeCount: edges}
}
