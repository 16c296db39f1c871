// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: a rim of n-1 points on the unit circle plus the hub at
//     the centre. n ≥ 4 so that the rim is a valid ring.
//
// Contract:
//   • Emits rim segments i→i+1 then spokes hub→i, all through AddSegments, so
//     the n-1 triangles are produced by face tracing (the rim loop itself is
//     the outer boundary and is not a face).
//   • V = n, E = 2(n-1), F = n-1.
//
// Complexity:
//   • Time: O(n) segments plus tracing.

package builder

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		rim := cfg.placeAll(ring(n - 1))
		hub := cfg.place(vec3.T{})

		segs := make([]mesh.Segment, 0, 2*(n-1))
		for i := range rim {
			segs = append(segs, mesh.Segment{Start: rim[i], End: rim[(i+1)%len(rim)]})
		}
		for i := range rim {
			segs = append(segs, mesh.Segment{Start: hub, End: rim[i]})
		}

		if err := m.AddSegments(segs); err != nil {
			return meshErr(MethodWheel, err)
		}
		return nil
	}
}
