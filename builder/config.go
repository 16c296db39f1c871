// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • scale    = 1
//   • origin   = (0,0,0)
//   • diagonal = mesh.DiagonalA
//   • rng      = nil (no randomness unless seeded)
//   • jitter   = 0

package builder

import (
	"math/rand"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	scale    float64
	origin   vec3.T
	diagonal mesh.Diagonal
	rng      *rand.Rand
	jitter   float64
}

const defaultScale = 1.0

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		scale:    defaultScale,
		diagonal: mesh.DiagonalA,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a local point to mesh space: origin + scale·p.
func (c builderConfig) place(p vec3.T) vec3.T {
	out := p.Scaled(c.scale)
	return *out.Add(&c.origin)
}

// placeAll maps every point of ps.
func (c builderConfig) placeAll(ps []vec3.T) []vec3.T {
	out := make([]vec3.T, len(ps))
	for i, p := range ps {
		out[i] = c.place(p)
	}
	return out
}
