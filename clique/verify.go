package clique

import "github.com/katalvlaran/cliquer/core"

// IsClique reports whether every pair of members is adjacent in g.
// Sets of size ≤ 1 are trivially cliques.
// Complexity: O(k²).
func IsClique(g *core.Graph, c Clique) bool {
	for i := range c {
		for j := i + 1; j < len(c); j++ {
			if !g.HasEdge(c[i], c[j]) {
				return false
			}
		}
	}

	return true
}

// IsMaximal reports whether c is a clique and no vertex outside c is
// adjacent to every member.
// Complexity: O(V·k).
func IsMaximal(g *core.Graph, c Clique) bool {
	if !IsClique(g, c) {
		return false
	}
	members := core.NewVertexSet(c...)
	for _, v := range g.Vertices() {
		if members.Has(v) {
			continue
		}
		extends := true
		for _, m := range c {
			if !g.HasEdge(v, m) {
				extends = false
				break
			}
		}
		if extends {
			return false
		}
	}

	return true
}
