// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: connected components via breadth-first search over the adjacency sets.
// Determinism:
//   - Roots are taken in ascending id order; each component is sorted;
//     components are ordered by their smallest vertex.

package core

import "slices"

// Components returns the connected components of g.
// Every maximal clique lies entirely inside one component.
//
// Complexity: O(V log V + E) time, O(V) space.
func (g *Graph) Components() [][]int {
	adj := g.Adjacency()

	roots := make([]int, 0, len(adj))
	for v := range adj {
		roots = append(roots, v)
	}
	slices.Sort(roots)

	visited := make(map[int]bool, len(adj))
	var out [][]int
	var queue []int
	for _, root := range roots {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		comp := []int{}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for u := range adj[v] {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}
