// Package builder provides deterministic fixture graphs for the clique and
// clustering packages: complete graphs, paths, cycles, stars, wheels,
// complete bipartite graphs, isolated vertices and Erdős–Rényi samples.
//
// The package offers the following key components:
//
//   - Constructor: a closure that adds one topology to a core.Graph, drawing
//     vertex ids from a contiguous block of indices.
//   - BuildGraph(opts, cons...): runs constructors in order; every constructor
//     gets a fresh index block, so the result is the disjoint union of the
//     topologies (e.g. Complete(3) + Path(2) + Isolated(1)).
//   - BuilderOption: WithSeed / WithRand for stochastic constructors,
//     WithIDOffset / WithIDScheme for vertex numbering.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
//   - Constructors validate parameters and return sentinel errors wrapped with
//     the method name; they never panic. Option constructors panic on nil.
//
// Clique facts for the fixtures (used heavily by tests):
//
//	Complete(n)            one maximal clique of size n, clustering 1
//	Path(n)                n-1 cliques of size 2, clustering 0
//	Cycle(n), n ≥ 4        n cliques of size 2; Cycle(3) is K_3
//	Star(n)                n-1 cliques of size 2, clustering 0
//	Wheel(n), n ≥ 5        n-1 triangles through the hub
//	CompleteBipartite(a,b) a·b cliques of size 2, clustering 0
//	Isolated(n)            n singleton cliques
package builder
