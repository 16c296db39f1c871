// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options and their resolved configuration.
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Defaults are deterministic; later options override earlier ones.

package mesh

import (
	"io"
	"log/slog"
	"math"
	"sync"
)

// Deterministic defaults.
const (
	// DefaultTolerance is the coordinate tolerance used for vertex dedup and
	// point-on-edge tests.
	DefaultTolerance = 1e-6

	// DefaultPlanarTolerance bounds |dir·n| for an edge direction to count as
	// lying in the plane of a traced loop.
	DefaultPlanarTolerance = 1e-3

	// DefaultMaxLoopEdges caps the length of a traced face loop.
	DefaultMaxLoopEdges = 256

	minLoopEdges = 3
)

// FaceDedup selects how traced face candidates are compared with faces
// already in the mesh.
type FaceDedup int

const (
	// FaceDedupIdentity keeps a candidate unless the very same face object is
	// already a member. The tracer hands back existing faces for loops that
	// are already bounded, so re-traced loops are not duplicated.
	FaceDedupIdentity FaceDedup = iota

	// FaceDedupGeometric additionally drops a new face whose vertex set
	// equals the vertex set of a member face.
	FaceDedupGeometric
)

// String returns "identity" or "geometric".
func (d FaceDedup) String() string {
	if d == FaceDedupGeometric {
		return "geometric"
	}
	return "identity"
}

// Option configures a Mesh at construction time.
type Option func(*config)

type config struct {
	tolerance       float64
	planarTolerance float64
	maxLoopEdges    int
	dedup           FaceDedup
	creator         Creator
	logger          *slog.Logger
	lock            *sync.RWMutex // nil: private lock per mesh
}

func newConfig(opts ...Option) config {
	cfg := config{
		tolerance:       DefaultTolerance,
		planarTolerance: DefaultPlanarTolerance,
		maxLoopEdges:    DefaultMaxLoopEdges,
		dedup:           FaceDedupIdentity,
		creator:         DefaultCreator{},
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTolerance sets the coordinate tolerance. Panics on negative or NaN eps.
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("mesh: WithTolerance(eps) requires a finite eps >= 0")
	}
	return func(c *config) { c.tolerance = eps }
}

// WithPlanarTolerance sets the in-plane threshold used by face tracing.
// Panics unless 0 <= t < 1.
func WithPlanarTolerance(t float64) Option {
	if t < 0 || t >= 1 || math.IsNaN(t) {
		panic("mesh: WithPlanarTolerance(t) requires 0 <= t < 1")
	}
	return func(c *config) { c.planarTolerance = t }
}

// WithMaxLoopEdges caps traced loop length. Panics when n < 3.
func WithMaxLoopEdges(n int) Option {
	if n < minLoopEdges {
		panic("mesh: WithMaxLoopEdges(n) requires n >= 3")
	}
	return func(c *config) { c.maxLoopEdges = n }
}

// WithFaceDedup selects the face dedup policy used by face induction.
func WithFaceDedup(d FaceDedup) Option {
	if d != FaceDedupIdentity && d != FaceDedupGeometric {
		panic("mesh: WithFaceDedup: unknown policy")
	}
	return func(c *config) { c.dedup = d }
}

// WithCreator replaces the element factory. Panics on nil.
func WithCreator(cr Creator) Option {
	if cr == nil {
		panic("mesh: WithCreator(nil)")
	}
	return func(c *config) { c.creator = cr }
}

// WithLogger sets the diagnostics sink. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mesh: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithLock makes the mesh use mu as its mutual-exclusion domain. Meshes built
// with the same mu serialise their structural sections against each other.
// Panics on nil.
func WithLock(mu *sync.RWMutex) Option {
	if mu == nil {
		panic("mesh: WithLock(nil)")
	}
	return func(c *config) { c.lock = mu }
}
