// Package clique enumerates the maximal cliques of a core.Graph with the
// Bron–Kerbosch backtracking algorithm, in a plain and a pivoted variant.
//
// What:
//
//   - Plain: exhaustive branch-and-backtrack over the candidate triple
//     (R, P, X). R is the growing clique, P the vertices that may still
//     extend it, X the vertices already tried for this R.
//   - Pivot: before branching, a pivot u ∈ P ∪ X is chosen and only
//     P \ N(u) is tried. Every maximal clique over P ∪ X contains u or one of
//     its non-neighbours, so the skipped branches could only re-derive cliques
//     found elsewhere. The output set is identical to Plain for every pivot.
//
// A clique is reported exactly when a call is entered with P and X both
// empty. R, P and X stay pairwise disjoint; each recursive frame owns its P
// and X and hands freshly intersected copies to its children.
//
// Key Types:
//
//   - Clique: sorted []int.
//   - Enumerator: built once per graph by New; All() is a lazy, restartable
//     iter.Seq, Run() collects a canonical Result with call statistics.
//   - PivotStrategy: RandomPivot (default), MaxDegreePivot, FirstPivot, or
//     any PivotFunc.
//   - Observer: OnCall/OnClique hooks (the metrics package implements it).
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked on every call.
//   - WithPivot(s)         pivot strategy (Pivot variant only).
//   - WithSeed(seed)       rng seed; every run re-seeds, so runs repeat exactly.
//   - WithRand(r)          explicit rng shared across runs.
//   - WithObserver(obs)    instrumentation hooks.
//   - WithWorkers(n)       Run expands top-level branches on n goroutines.
//
// Complexity:
//
//   - Time O(3^{V/3}) in the worst case (Moon–Moser bound on the number of
//     maximal cliques); this is inherent and not artificially bounded.
//   - Memory O(V²) for the candidate sets along one recursion path; depth is
//     bounded by the largest clique.
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil.
//   - ErrUnknownVariant  variant is neither Plain nor Pivot.
//   - ErrUnknownPivot    ParsePivot got an unknown name.
//   - context errors     Run canceled via WithContext.
package clique
