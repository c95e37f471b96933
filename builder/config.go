// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn   = identity (index i → vertex i)
//   • offset = 0
//   • rng    = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// idFn maps a global index to a vertex id.
	idFn func(int) int
	// offset is added to every index before idFn.
	offset int
	// base is the first index of the block owned by the running constructor.
	// BuildGraph advances it after every constructor.
	base int
	// rng for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: identityID,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id resolves the vertex id of local index i inside the current block.
func (c builderConfig) id(i int) int {
	return c.idFn(c.offset + c.base + i)
}

// identityID returns its argument.
func identityID(i int) int {
	return i
}
