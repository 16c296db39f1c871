// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go: implementation of PlatonicSolid(name) constructor.
//
// Canonical model:
//   • Vertices come from variants_platonic.go (centred at the origin).
//   • Faces are the supporting planes of the convex point set: every vertex
//     triple whose plane leaves all other vertices on one side defines a face,
//     which collects every vertex on that plane. Equal vertex sets are merged.
//   • Face loops are ordered counter-clockwise about the outward normal, so
//     every face normal points away from the centre.
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • Geometry is placed through cfg (scale, then origin) and added with
//     mesh.AddPolygons, so shared corners and edges are reused.
//
// Complexity:
//   • Time: O(V^4) face search on V ≤ 20 points, then O(F·L) placement.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// hullEps is the plane-side tolerance for the unit-sized canonical shells.
const hullEps = 1e-9

// PlatonicSolid returns a Constructor that builds the closed shell of name.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		pts, ok := platonicVertices[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		faces := convexFaces(pts)
		polys := lo.Map(faces, func(loop []int, _ int) []vec3.T {
			return lo.Map(loop, func(i int, _ int) vec3.T { return cfg.place(pts[i]) })
		})
		if err := m.AddPolygons(polys); err != nil {
			return meshErr(MethodPlatonicSolid, err)
		}
		return nil
	}
}

// convexFaces returns the faces of the convex hull of pts as index loops,
// counter-clockwise about their outward normals, in discovery order.
func convexFaces(pts []vec3.T) [][]int {
	var out [][]int
	seen := make(map[string]bool)
	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				normal, ok := supportingNormal(pts, i, j, k)
				if !ok {
					continue
				}
				d := vec3.Dot(&normal, &pts[i])
				on := lo.Filter(lo.Range(n), func(x int, _ int) bool {
					return math.Abs(vec3.Dot(&normal, &pts[x])-d) <= hullEps
				})
				key := fmt.Sprint(on)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, orderAround(pts, on, normal))
			}
		}
	}
	return out
}

// supportingNormal returns the outward unit normal of the plane through
// pts[i], pts[j], pts[k] when every point lies on or behind it.
func supportingNormal(pts []vec3.T, i, j, k int) (vec3.T, bool) {
	e1 := vec3.Sub(&pts[j], &pts[i])
	e2 := vec3.Sub(&pts[k], &pts[i])
	normal := vec3.Cross(&e1, &e2)
	if normal.Length() <= hullEps {
		return vec3.T{}, false
	}
	normal.Normalize()
	d := vec3.Dot(&normal, &pts[i])

	above, below := false, false
	for x := range pts {
		s := vec3.Dot(&normal, &pts[x]) - d
		switch {
		case s > hullEps:
			above = true
		case s < -hullEps:
			below = true
		}
	}
	switch {
	case above && below:
		return vec3.T{}, false
	case above:
		normal.Invert()
	}
	return normal, true
}

// orderAround sorts the indices of a planar face counter-clockwise about normal.
func orderAround(pts []vec3.T, idx []int, normal vec3.T) []int {
	var c vec3.T
	for _, i := range idx {
		c.Add(&pts[i])
	}
	c.Scale(1 / float64(len(idx)))

	u := vec3.Sub(&pts[idx[0]], &c)
	u.Normalize()
	w := vec3.Cross(&normal, &u)

	angle := func(i int) float64 {
		d := vec3.Sub(&pts[i], &c)
		return math.Atan2(vec3.Dot(&d, &w), vec3.Dot(&d, &u))
	}
	out := append([]int(nil), idx...)
	sort.SliceStable(out, func(a, b int) bool { return angle(out[a]) < angle(out[b]) })
	return out
}
