// SPDX-License-Identifier: MIT
//
// File: geometry.go
// Role: Position helpers over go3d vec3.T (tolerant equality, ordering, normals, angles).

package mesh

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// parallelEps bounds 1-|n1·n2| for two unit normals to count as the same plane.
const parallelEps = 1e-9

// collinearEps is the relative cross-product magnitude below which two
// directions are treated as collinear.
const collinearEps = 1e-12

var unitZ = vec3.T{0, 0, 1}

// PositionsEqual reports whether a and b agree component-wise within eps.
func PositionsEqual(a, b vec3.T, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps &&
		math.Abs(a[1]-b[1]) <= eps &&
		math.Abs(a[2]-b[2]) <= eps
}

func isFinite(p vec3.T) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// compareZYX orders positions by z, then y, then x, descending, treating
// components within eps as equal. Returns -1, 0 or +1.
func compareZYX(a, b vec3.T, eps float64) int {
	for _, k := range [3]int{2, 1, 0} {
		d := a[k] - b[k]
		if math.Abs(d) <= eps {
			continue
		}
		if d > 0 {
			return -1
		}
		return 1
	}
	return 0
}

// newellNormal returns the unit area normal of the closed polygon pts
// (sum of consecutive cross products). Degenerate input yields the zero vector.
func newellNormal(pts []vec3.T) vec3.T {
	var sum vec3.T
	n := len(pts)
	for i := 0; i < n; i++ {
		c := vec3.Cross(&pts[i], &pts[(i+1)%n])
		sum.Add(&c)
	}
	if sum.Length() == 0 {
		return vec3.T{}
	}

	return *sum.Normalize()
}

// centroid is the arithmetic mean of pts; zero for empty input.
func centroid(pts []vec3.T) vec3.T {
	var c vec3.T
	if len(pts) == 0 {
		return c
	}
	for i := range pts {
		c.Add(&pts[i])
	}

	return c.Scaled(1 / float64(len(pts)))
}

// projectOnPlane removes the n component from d (n must be unit length).
func projectOnPlane(d, n vec3.T) vec3.T {
	s := n.Scaled(vec3.Dot(&d, &n))
	return vec3.Sub(&d, &s)
}

// ccwAngle is the counter-clockwise angle about unit axis n that rotates
// direction from onto direction to, in [0, 2π).
func ccwAngle(from, to, n vec3.T) float64 {
	c := vec3.Cross(&from, &to)
	a := math.Atan2(vec3.Dot(&n, &c), vec3.Dot(&from, &to))
	if a < 0 {
		a += 2 * math.Pi
	}

	return a
}

func positionsOf(verts []*Vertex) []vec3.T {
	pts := make([]vec3.T, len(verts))
	for i, v := range verts {
		pts[i] = v.Pos
	}

	return pts
}
