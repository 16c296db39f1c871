// SPDX-License-Identifier: MIT
// Package mesh_test contains shared fixtures for lvmesh/mesh tests.
//
// Purpose:
//   - Small deterministic geometry (triangle, square, cube wireframe, grids).
//   - Structural assertions usable from any test (never from goroutines).

package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Concurrency sizes (avoid magic numbers in test bodies).
const (
	NWriters = 16
	NReaders = 16
	NRounds  = 20
)

func pt(x, y, z float64) vec3.T { return vec3.T{x, y, z} }

func seg(a, b vec3.T) mesh.Segment { return mesh.Segment{Start: a, End: b} }

// triangleSegments returns A-B, B-C, C-A with no shared endpoints, offset along x.
func triangleSegments(dx float64) []mesh.Segment {
	a, b, c := pt(dx, 0, 0), pt(dx+1, 0, 0), pt(dx, 1, 0)
	return []mesh.Segment{seg(a, b), seg(b, c), seg(c, a)}
}

// unitQuad is the square (0,0,0),(1,0,0),(1,1,0),(0,1,0).
func unitQuad() []vec3.T {
	return []vec3.T{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0)}
}

// cubeSegments returns the 12 edges of the unit cube.
func cubeSegments() []mesh.Segment {
	var out []mesh.Segment
	corners := func(i int) vec3.T {
		return pt(float64(i&1), float64((i>>1)&1), float64((i>>2)&1))
	}
	for i := 0; i < 8; i++ {
		for bit := 0; bit < 3; bit++ {
			j := i | (1 << bit)
			if j != i {
				out = append(out, seg(corners(i), corners(j)))
			}
		}
	}
	return out
}

// squareGridSegments returns the unit-length segments of an n×n grid of unit squares.
func squareGridSegments(n int) []mesh.Segment {
	var out []mesh.Segment
	for i := 0; i <= n; i++ {
		for j := 0; j < n; j++ {
			fi, fj := float64(i), float64(j)
			out = append(out, seg(pt(fj, fi, 0), pt(fj+1, fi, 0)))
			out = append(out, seg(pt(fi, fj, 0), pt(fi, fj+1, 0)))
		}
	}
	return out
}

// gridPoints returns u×v points on the z=0 plane with unit spacing.
func gridPoints(u, v int) [][]vec3.T {
	g := make([][]vec3.T, u)
	for i := range g {
		g[i] = make([]vec3.T, v)
		for j := range g[i] {
			g[i][j] = pt(float64(i), float64(j), 0)
		}
	}
	return g
}

// counts returns |V|, |E|, |F|.
func counts(m *mesh.Mesh) [3]int {
	return [3]int{m.VertexCount(), m.EdgeCount(), m.FaceCount()}
}

// requireSound asserts Validate plus the loop and alignment properties through
// the public API.
func requireSound(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	require.NoError(t, m.Validate())

	members := make(map[*mesh.Vertex]bool)
	for _, v := range m.Vertices() {
		members[v] = true
	}
	for _, e := range m.Edges() {
		a, b := e.Endpoints()
		require.True(t, members[a], "edge %v endpoint not a member", e)
		require.True(t, members[b], "edge %v endpoint not a member", e)
	}
	for _, f := range m.Faces() {
		n := f.Len()
		require.Len(t, f.Vertices(), n)
		for i := 0; i < n; i++ {
			e := f.Edge(i)
			require.True(t, e.Contains(f.Vertex(i)), "face %v edge %d", f, i)
			require.True(t, e.Contains(f.Vertex(i+1)), "face %v edge %d", f, i)
		}
	}
	for _, v := range m.Vertices() {
		require.Equal(t, v.EdgeCount(), v.LinkedCount())
		for i := 0; i < v.EdgeCount(); i++ {
			require.Same(t, v.Edge(i).Other(v), v.LinkedVertex(i))
		}
	}
}

// findVertex returns the member vertex at p (exact), or nil.
func findVertex(m *mesh.Mesh, p vec3.T) *mesh.Vertex {
	for _, v := range m.Vertices() {
		if mesh.PositionsEqual(v.Pos, p, 0) {
			return v
		}
	}
	return nil
}

// edgeAt returns the member edge joining positions p and q, or nil.
func edgeAt(m *mesh.Mesh, p, q vec3.T) *mesh.Edge {
	a, b := findVertex(m, p), findVertex(m, q)
	if a == nil || b == nil {
		return nil
	}
	return a.EdgeTo(b)
}
