// SPDX-License-Identifier: MIT

package clustering

import "github.com/katalvlaran/cliquer/core"

// HasEdge reports whether a and b are adjacent. An absent vertex has no edges.
func HasEdge(g *core.Graph, a, b int) bool {
	if g == nil {
		return false
	}

	return g.HasEdge(a, b) || g.HasEdge(b, a)
}

// Local returns the clustering coefficient of v, in [0,1].
// Vertices with fewer than two neighbours (absent ones included) score 0.
func Local(g *core.Graph, v int) float64 {
	if g == nil {
		return 0
	}
	nv := g.Neighbors(v)
	if nv.Len() < 2 {
		return 0
	}

	has := func(a, b int) bool { return HasEdge(g, a, b) }

	return coefficient(nv.Len(), has, nv.Sorted())
}

// All returns the coefficient of every vertex.
func All(g *core.Graph) map[int]float64 {
	out := make(map[int]float64)
	if g == nil {
		return out
	}
	adj := g.Adjacency()
	for v, nv := range adj {
		out[v] = coefficient(nv.Len(), adjacent(adj), nv.Sorted())
	}

	return out
}

// Average returns (1/N)·ΣC(v) over all N vertices, or 0 when N is 0.
func Average(g *core.Graph) float64 {
	if g == nil {
		return 0
	}
	adj := g.Adjacency()
	if len(adj) == 0 {
		return 0
	}

	var sum float64
	for _, nv := range adj {
		sum += coefficient(nv.Len(), adjacent(adj), nv.Sorted())
	}

	return sum / float64(len(adj))
}

// Triangles returns the number of triangles in g. Each triangle is seen once
// from each of its three corners.
func Triangles(g *core.Graph) int {
	if g == nil {
		return 0
	}
	adj := g.Adjacency()
	total := 0
	for _, nv := range adj {
		total += links(adjacent(adj), nv.Sorted())
	}

	return total / 3
}

// coefficient computes 2L/(k(k−1)) for a vertex of degree k.
func coefficient(k int, has func(a, b int) bool, neighbours []int) float64 {
	if k < 2 {
		return 0
	}
	l := links(has, neighbours)

	return 2 * float64(l) / float64(k*(k-1))
}

// links counts unordered neighbour pairs that are themselves adjacent.
func links(has func(a, b int) bool, neighbours []int) int {
	l := 0
	for i := 0; i < len(neighbours); i++ {
		for j := i + 1; j < len(neighbours); j++ {
			if has(neighbours[i], neighbours[j]) {
				l++
			}
		}
	}

	return l
}

// adjacent is HasEdge over an adjacency snapshot: either direction counts.
func adjacent(adj map[int]core.VertexSet) func(a, b int) bool {
	return func(a, b int) bool { return adj[a].Has(b) || adj[b].Has(a) }
}
