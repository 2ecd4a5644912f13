// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the constructor name with `%w`, e.g. "Cycle: n=2 < min=3: ...".
//   • Constructors never panic; validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0.0, 1.0].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set via WithRand or WithSeed) but none was provided.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a Constructor that was not obtained from this package.
var ErrConstructFailed = errors.New("builder: construction failed")
