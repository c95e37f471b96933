// SPDX-License-Identifier: MIT

// Package clustering computes local clustering coefficients and triangle
// counts on a core.Graph.
//
// For a vertex v with degree k and L edges among its neighbours:
//
//	C(v) = 2L / (k(k−1))   if k ≥ 2
//	C(v) = 0               otherwise
//
// The average coefficient divides ΣC(v) by the actual vertex count N, and is
// 0 for an empty graph. Every function is total: a nil graph yields the zero
// value.
//
// Complexity: Local is O(k²); All, Average and Triangles are O(Σ deg(v)²).
package clustering
