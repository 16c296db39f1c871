// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Option customizes constructors by mutating a builderConfig before any
// geometry is placed. Later options override earlier ones.
type Option func(*builderConfig)

// WithScale multiplies every generated or supplied point by s.
// Panics unless s is finite and > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale(s) requires a finite s > 0")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOrigin translates every point by p (applied after scaling).
// Panics on non-finite components.
func WithOrigin(p vec3.T) Option {
	for _, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			panic("builder: WithOrigin(p) requires finite components")
		}
	}
	return func(c *builderConfig) {
		c.origin = p
	}
}

// WithDiagonal selects the cell split used by PointGrid and Grid.
func WithDiagonal(d mesh.Diagonal) Option {
	if d != mesh.DiagonalA && d != mesh.DiagonalB {
		panic("builder: WithDiagonal: unknown diagonal")
	}
	return func(c *builderConfig) {
		c.diagonal = d
	}
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded random source (reproducible runs).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter perturbs Grid heights uniformly in [-a, a]. a > 0 requires a
// random source. Panics on negative or non-finite a.
func WithJitter(a float64) Option {
	if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		panic("builder: WithJitter(a) requires a finite a >= 0")
	}
	return func(c *builderConfig) {
		c.jitter = a
	}
}
