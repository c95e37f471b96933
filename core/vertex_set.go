// SPDX-License-Identifier: MIT
//
// File: vertex_set.go
// Role: map-backed vertex set used for adjacency and for the Bron–Kerbosch
// candidate sets.
// Determinism:
//   - Map iteration is random; Sorted() is the only ordered view.
//   - Set algebra returns fresh sets; receivers are never mutated.

package core

import "slices"

// VertexSet is a set of vertex ids.
type VertexSet map[int]struct{}

// NewVertexSet returns a set holding vs.
func NewVertexSet(vs ...int) VertexSet {
	s := make(VertexSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}

	return s
}

// Add inserts v.
func (s VertexSet) Add(v int) { s[v] = struct{}{} }

// Remove deletes v; absent v is a no-op.
func (s VertexSet) Remove(v int) { delete(s, v) }

// Has reports membership.
func (s VertexSet) Has(v int) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s VertexSet) Len() int { return len(s) }

// Clone returns an independent copy.
func (s VertexSet) Clone() VertexSet {
	out := make(VertexSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}

// Intersect returns s ∩ o. It iterates the smaller operand.
// Complexity: O(min(|s|,|o|)).
func (s VertexSet) Intersect(o VertexSet) VertexSet {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(VertexSet, len(small))
	for v := range small {
		if _, ok := large[v]; ok {
			out[v] = struct{}{}
		}
	}

	return out
}

// Difference returns s \ o.
// Complexity: O(|s|).
func (s VertexSet) Difference(o VertexSet) VertexSet {
	out := make(VertexSet, len(s))
	for v := range s {
		if _, ok := o[v]; !ok {
			out[v] = struct{}{}
		}
	}

	return out
}

// Union returns s ∪ o.
// Complexity: O(|s|+|o|).
func (s VertexSet) Union(o VertexSet) VertexSet {
	out := make(VertexSet, len(s)+len(o))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range o {
		out[v] = struct{}{}
	}

	return out
}

// Sorted returns the members in ascending order.
// Complexity: O(n log n).
func (s VertexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}
