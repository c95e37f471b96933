// Package clique defines types and options for Bron–Kerbosch enumeration.
package clique

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to New.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrUnknownVariant indicates a Variant other than Plain or Pivot.
	ErrUnknownVariant = errors.New("clique: unknown variant")

	// ErrUnknownPivot indicates ParsePivot received an unknown strategy name.
	ErrUnknownPivot = errors.New("clique: unknown pivot strategy")
)

// Variant selects the Bron–Kerbosch flavour.
type Variant int

const (
	// Plain is Bron–Kerbosch without pivoting.
	Plain Variant = iota
	// Pivot is Bron–Kerbosch with pivot-based branch pruning.
	Pivot
)

// String returns "plain" or "pivot".
func (v Variant) String() string {
	switch v {
	case Plain:
		return "plain"
	case Pivot:
		return "pivot"
	default:
		return "variant(" + strconv.Itoa(int(v)) + ")"
	}
}

// ParseVariant maps "plain" / "pivot" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return Plain, nil
	case "pivot":
		return Pivot, nil
	default:
		return 0, fmt.Errorf("clique: variant %q: %w", s, ErrUnknownVariant)
	}
}

// Clique is a set of pairwise adjacent vertices, sorted ascending.
type Clique []int

// String renders the clique as "{1, 2, 3}".
func (c Clique) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')

	return b.String()
}

// Contains reports whether v is a member.
func (c Clique) Contains(v int) bool {
	_, ok := slices.BinarySearch(c, v)
	return ok
}

// Canonicalize sorts every clique and then the cliques lexicographically,
// in place, so two enumerations of the same graph compare equal.
func Canonicalize(cs []Clique) []Clique {
	for _, c := range cs {
		slices.Sort(c)
	}
	slices.SortFunc(cs, func(a, b Clique) int { return slices.Compare(a, b) })

	return cs
}

// Observer receives instrumentation callbacks from an enumeration.
// Implementations must be safe for concurrent use when WithWorkers(n>1) is set.
type Observer interface {
	// OnCall fires on entry of every recursive call; depth is |R|.
	OnCall(v Variant, depth int)
	// OnClique fires for every maximal clique reported.
	OnClique(v Variant, size int)
}

// Result is the collected outcome of Run.
type Result struct {
	// Variant that produced the result.
	Variant Variant
	// Cliques in canonical order (see Canonicalize).
	Cliques []Clique
	// Calls is the number of recursive invocations, the root included.
	Calls int64
	// MaxDepth is the largest |R| seen on entry of any call.
	MaxDepth int
}

// Count returns the number of maximal cliques.
func (r *Result) Count() int { return len(r.Cliques) }

// Option configures optional behavior of an Enumerator.
type Option func(*Options)

// Options holds the configurable parameters of an Enumerator.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Pivot chooses the pivot in the Pivot variant; defaults to RandomPivot.
	Pivot PivotStrategy

	// Rand, if non-nil, is used by every run instead of a Seed-derived rng.
	Rand *rand.Rand

	// Seed initialises a fresh rng on every run when Rand is nil.
	Seed int64

	// Observer, if non-nil, receives OnCall/OnClique callbacks.
	Observer Observer

	// Workers > 1 lets Run expand top-level branches concurrently.
	Workers int
}

// DefaultSeed is the rng seed used when neither WithSeed nor WithRand is set.
const DefaultSeed int64 = 1

// DefaultOptions returns Options with:
//   - Background context
//   - RandomPivot strategy
//   - Seed = DefaultSeed, no shared rng
//   - No observer
//   - Sequential execution (Workers = 1)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Pivot:   RandomPivot(),
		Seed:    DefaultSeed,
		Workers: 1,
	}
}

// WithContext sets the context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPivot installs a pivot strategy. nil is ignored.
func WithPivot(s PivotStrategy) Option {
	return func(o *Options) {
		if s != nil {
			o.Pivot = s
		}
	}
}

// WithSeed fixes the rng seed used to start every run.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand shares r across runs. Runs then differ in pivot choices but not in
// the clique set. r is not safe for concurrent use, so Run derives per-branch
// rngs from it when Workers > 1.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithObserver installs instrumentation hooks.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithWorkers sets the number of goroutines Run may use; n < 1 means 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}
