// SPDX-License-Identifier: MIT
// Package: cliquer/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with "%s: ...: %w" (method name first).
//   • Priority when several validations fail: size → probability → rng.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1, n2) is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor,
// or a core insertion failure surfaced by a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
