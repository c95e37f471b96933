// Package cliquer finds the maximal cliques of undirected graphs and
// measures how clustered they are.
//
// What is in the module:
//
//	core/        Graph over int vertex ids, VertexSet algebra, Stats, Components
//	builder/     deterministic fixture graphs (Complete, Wheel, RandomSparse, …)
//	clique/      Bron–Kerbosch, plain and pivoted, as lazy iter.Seq or Run
//	clustering/  local and average clustering coefficients, triangle count
//	loader/      edge-list and MatrixMarket reader/writer
//	report/      text, JSON and YAML rendering
//	metrics/     prometheus Observer for enumeration runs
//	cmd/cliquer  command line front end
//
// Quick ASCII example:
//
//	1───2
//	 ╲ ╱ ╲
//	  3───4───5
//
//	g, _ := core.NewGraphFromEdges([]core.Edge{{1, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4}, {4, 5}})
//	cs, _ := clique.BronKerboschPivot(g, clique.WithPivot(clique.MaxDegreePivot()))
//	// cs == [{1, 2, 3} {2, 3, 4} {4, 5}]
//	avg := clustering.Average(g)
//	// (1 + 2/3 + 2/3 + 1/3 + 0) / 5
//
// Both enumerators report the same set of cliques; pivoting only prunes the
// search tree. The average coefficient divides by the number of vertices.
package cliquer
