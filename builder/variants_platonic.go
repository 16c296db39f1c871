// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go: canonical vertex sets for the five Platonic solids.
//
// Design:
//   • Single source of truth: one centred, unscaled coordinate list per solid.
//   • Faces are not tabulated; impl_platonic.go derives them as the supporting
//     planes of the (convex) point set.
//
// Expected shells (V/E/F):
//   • Tetrahedron 4/6/4, Cube 8/12/6, Octahedron 6/12/8,
//     Dodecahedron 20/30/12, Icosahedron 12/30/20.

package builder

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // V=8,  E=12, F=6
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // V=20, E=30, F=12
	Icosahedron                      // V=12, E=30, F=20
)

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// platonicVertices maps each solid to its canonical coordinates.
var platonicVertices = map[PlatonicName][]vec3.T{
	Tetrahedron: {
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	},
	Cube: signs3(1, 1, 1),
	Octahedron: {
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	},
	Dodecahedron: concat(
		signs3(1, 1, 1),
		signs3(0, 1/phi, phi),
		signs3(1/phi, phi, 0),
		signs3(phi, 0, 1/phi),
	),
	Icosahedron: concat(
		signs3(0, 1, phi),
		signs3(1, phi, 0),
		signs3(phi, 0, 1),
	),
}

// signs3 returns every sign combination of (x, y, z); zero components are
// not duplicated. Order: x sign outermost, + before -.
func signs3(x, y, z float64) []vec3.T {
	var out []vec3.T
	for _, sx := range signsOf(x) {
		for _, sy := range signsOf(y) {
			for _, sz := range signsOf(z) {
				out = append(out, vec3.T{sx, sy, sz})
			}
		}
	}
	return out
}

func signsOf(v float64) []float64 {
	if v == 0 {
		return []float64{0}
	}
	return []float64{v, -v}
}

func concat(groups ...[]vec3.T) []vec3.T {
	var out []vec3.T
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
