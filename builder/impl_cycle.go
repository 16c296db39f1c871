// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Regular n-gon of unit circumradius in the XY plane, vertex i at angle
//     2πi/n, counter-clockwise (normal +Z), then placed by scale/origin.
//   • Exactly one face; V = E = n.
//
// Complexity:
//   • Time: O(n).

package builder

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Cycle returns a Constructor that builds a regular n-gon face.
func Cycle(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := m.AddPolygons([][]vec3.T{cfg.placeAll(ring(n))}); err != nil {
			return meshErr(MethodCycle, err)
		}
		return nil
	}
}

// ring returns n unit-circle points counter-clockwise from (1,0,0).
func ring(n int) []vec3.T {
	pts := make([]vec3.T, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec3.T{math.Cos(a), math.Sin(a), 0}
	}
	return pts
}
