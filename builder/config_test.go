// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, 1.0, cfg.scale)
	assert.Equal(t, vec3.T{}, cfg.origin)
	assert.Equal(t, mesh.DiagonalA, cfg.diagonal)
	assert.Nil(t, cfg.rng, "no randomness unless seeded")
	assert.Zero(t, cfg.jitter)
}

func TestPlace_ScaleThenOrigin(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithScale(2), WithOrigin(vec3.T{10, 0, -1}))
	assert.Equal(t, vec3.T{12, 4, 5}, cfg.place(vec3.T{1, 2, 3}))

	// Last option wins.
	cfg = newBuilderConfig(WithScale(2), WithScale(3))
	assert.Equal(t, 3.0, cfg.scale)
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "same seed ⇒ same stream")
	}

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithScale(0) })
	assert.Panics(t, func() { WithScale(math.Inf(1)) })
	assert.Panics(t, func() { WithScale(math.NaN()) })
	assert.Panics(t, func() { WithOrigin(vec3.T{math.NaN(), 0, 0}) })
	assert.Panics(t, func() { WithDiagonal(mesh.Diagonal(9)) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithJitter(-0.1) })
	assert.NotPanics(t, func() { WithJitter(0) })
}

func TestConvexFaces_Counts(t *testing.T) {
	t.Parallel()

	want := map[PlatonicName][2]int{ // faces, loop length
		Tetrahedron:  {4, 3},
		Cube:         {6, 4},
		Octahedron:   {8, 3},
		Dodecahedron: {12, 5},
		Icosahedron:  {20, 3},
	}
	for name, w := range want {
		faces := convexFaces(platonicVertices[name])
		require.Len(t, faces, w[0], name.String())
		for _, f := range faces {
			assert.Len(t, f, w[1], name.String())
		}
	}
}
