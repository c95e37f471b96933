// Package core provides the undirected, unweighted in-memory Graph used by
// the clique and clustering packages.
//
// The Graph G = (V,E) maps every integer vertex id to its adjacency set:
//
//	adjacency[v] = {u : (u,v) ∈ E}
//
// Invariants:
//
//   - Symmetry: u ∈ adjacency[v] ⇔ v ∈ adjacency[u].
//   - No self-loops: AddEdges rejects (v,v) with ErrLoopNotAllowed.
//   - Unknown vertices are isolated: Neighbors(v) of an absent v is an empty
//     set, never an error.
//
// Lifecycle:
//
//	A Graph is built once (NewGraphFromEdges, or NewGraph + AddEdges/AddVertex)
//	and then treated as read-only. There is no removal API.
//	All methods are guarded by a sync.RWMutex, so concurrent readers are safe.
//
// Core Methods:
//
//	AddEdges(pairs ...Edge) error   // O(len(pairs)), atomic per batch
//	AddVertex(v int)                // O(1)
//	HasVertex(v) / HasEdge(a,b)     // O(1)
//	Neighbors(v) VertexSet          // O(deg(v)) copy
//	Degree(v)                       // O(1)
//	Vertices() / Edges()            // sorted, O(V log V) / O(E log E)
//	Adjacency()                     // deep read-only snapshot, O(V+E)
//	Components()                    // BFS forest, O(V+E)
//	Stats()                         // O(V) snapshot
//
// VertexSet is the map-backed set type shared by the algorithms:
// Intersect, Difference and Union always return fresh sets and never
// mutate their receivers.
package core
