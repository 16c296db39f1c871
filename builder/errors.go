// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method tag first).
//   • Option constructors panic on meaningless input; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, point count)
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic setting (WithJitter > 0) without a
// random source (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates an invalid constructor parameter, e.g. an
// unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates that the mesh rejected the generated geometry
// or a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
