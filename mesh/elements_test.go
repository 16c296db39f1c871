// SPDX-License-Identifier: MIT
package mesh_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

func TestNewEdge_LinksEndpoints(t *testing.T) {
	a, b := mesh.NewVertex(pt(0, 0, 0)), mesh.NewVertex(pt(3, 4, 0))
	e := mesh.NewEdge(a, b)
	require.NotNil(t, e)

	assert.Same(t, e, a.EdgeTo(b))
	assert.Same(t, e, b.EdgeTo(a))
	assert.Same(t, b, e.Other(a))
	assert.Nil(t, e.Other(mesh.NewVertex(pt(1, 1, 1))))
	assert.InDelta(t, 5.0, e.Length(), 1e-12)
	assert.Equal(t, pt(1.5, 2, 0), e.Mid())
	assert.True(t, e.IsFree())

	assert.Nil(t, mesh.NewEdge(a, a))
	assert.Nil(t, mesh.NewEdge(a, nil))
}

func TestNewFace_RejectsOpenLoops(t *testing.T) {
	a, b, c, d := mesh.NewVertex(pt(0, 0, 0)), mesh.NewVertex(pt(1, 0, 0)), mesh.NewVertex(pt(0, 1, 0)), mesh.NewVertex(pt(5, 5, 0))
	ab, bc, ca, cd := mesh.NewEdge(a, b), mesh.NewEdge(b, c), mesh.NewEdge(c, a), mesh.NewEdge(c, d)

	assert.Nil(t, mesh.NewFace([]*mesh.Edge{ab, bc}))
	assert.Nil(t, mesh.NewFace([]*mesh.Edge{ab, bc, cd}))
	assert.Nil(t, mesh.NewFace([]*mesh.Edge{ab, nil, ca}))

	f := mesh.NewFace([]*mesh.Edge{bc, ca, ab})
	require.NotNil(t, f)
	// Vertex i is shared by edges[i-1] and edges[i].
	assert.Equal(t, []*mesh.Vertex{b, c, a}, f.Vertices())
	assert.Equal(t, 1, ab.FaceCount())
	assert.Equal(t, 1, a.FaceCount())
	assert.Same(t, f.Edge(0), f.Edge(3), "Edge index wraps")
	assert.Same(t, f.Vertex(-1), f.Vertex(2))
}

func TestVertex_OtherEdgesAndLinks(t *testing.T) {
	m, err := mesh.NewPolygon(unitQuad())
	require.NoError(t, err)
	v := m.Vertex(0)
	require.Equal(t, 2, v.EdgeCount())

	others, err := v.OtherEdges(v.Edge(0))
	require.NoError(t, err)
	assert.Equal(t, []*mesh.Edge{v.Edge(1)}, others)

	far := edgeAt(m, pt(1, 0, 0), pt(1, 1, 0))
	_, err = v.OtherEdges(far)
	assert.ErrorIs(t, err, mesh.ErrEdgeNotFound)

	assert.Nil(t, v.Edge(5))
	assert.Nil(t, v.LinkedVertex(-1))
	assert.Nil(t, v.Face(1))
}

func TestVertex_NormalAndTexture(t *testing.T) {
	lone := mesh.NewVertex(pt(0, 0, 0))
	assert.Equal(t, pt(0, 0, 1), lone.Normal(), "no faces: +Z")
	assert.False(t, lone.HasNormal())

	m, err := mesh.NewPolygon([]vec3.T{pt(0, 0, 0), pt(0, 1, 0), pt(1, 0, 0)})
	require.NoError(t, err)
	n := m.Vertex(0).Normal()
	assert.InDelta(t, -1.0, n[2], 1e-12, "clockwise loop averages to -Z")

	// Two faces over the same edges, wound oppositely in the y=0 plane.
	a, b, c := mesh.NewVertex(pt(0, 0, 0)), mesh.NewVertex(pt(1, 0, 0)), mesh.NewVertex(pt(0, 0, 1))
	ab, bc, ca := mesh.NewEdge(a, b), mesh.NewEdge(b, c), mesh.NewEdge(c, a)
	up, down := mesh.NewFace([]*mesh.Edge{ab, bc, ca}), mesh.NewFace([]*mesh.Edge{ca, bc, ab})
	require.NotNil(t, up)
	require.NotNil(t, down)
	upN, downN := up.Normal(), down.Normal()
	assert.InDelta(t, 1.0, math.Abs(upN[1]), 1e-12)
	assert.InDelta(t, -upN[1], downN[1], 1e-12)
	assert.Equal(t, pt(0, 0, 1), a.AverageNormal(), "cancelling face normals: +Z")

	v := m.Vertex(1)
	v.SetNormal(pt(1, 0, 0))
	assert.True(t, v.HasNormal())
	assert.Equal(t, pt(1, 0, 0), v.Normal())
	v.ClearNormal()
	assert.False(t, v.HasNormal())

	_, ok := v.Texture()
	assert.False(t, ok)
	v.SetTexture(vec2.T{0.5, 1})
	uv, ok := v.Texture()
	assert.True(t, ok)
	assert.Equal(t, vec2.T{0.5, 1}, uv)
}

func TestVertex_EqAndValidity(t *testing.T) {
	a := mesh.NewVertex(pt(1, 2, 3))
	b := mesh.NewVertex(pt(1, 2, 3+1e-9))
	assert.True(t, a.Eq(b, 1e-6))
	assert.False(t, a.Eq(b, 0))
	assert.False(t, a.Eq(nil, 1))
	assert.True(t, a.IsValid())

	var nilV *mesh.Vertex
	assert.False(t, nilV.IsValid())
	assert.Equal(t, "v<nil>", nilV.String())
	assert.Equal(t, fmt.Sprintf("v%d(1, 2, 3)", a.ID), a.String())
}

func TestEdge_IsOnEdge(t *testing.T) {
	e := mesh.NewEdge(mesh.NewVertex(pt(0, 0, 0)), mesh.NewVertex(pt(2, 0, 0)))
	const eps = 1e-6

	cases := []struct {
		name string
		p    vec3.T
		want bool
	}{
		{"midpoint", pt(1, 0, 0), true},
		{"near line", pt(1, 1e-7, 0), true},
		{"off line", pt(1, 1e-3, 0), false},
		{"endpoint", pt(0, 0, 0), false},
		{"near endpoint", pt(2-1e-8, 0, 0), false},
		{"beyond", pt(3, 0, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.IsOnEdge(tc.p, eps))
		})
	}
}

func TestEdge_SharedVertex(t *testing.T) {
	m, err := mesh.NewPolygon(unitQuad())
	require.NoError(t, err)
	f := m.Face(0)

	assert.Same(t, f.Vertex(1), f.Edge(0).SharedVertex(f.Edge(1)))
	assert.False(t, f.Edge(0).SharesVertex(f.Edge(2)))
	assert.Nil(t, f.Edge(0).SharedVertex(nil))
}

func TestFace_Queries(t *testing.T) {
	m, err := mesh.NewPolygon(unitQuad())
	require.NoError(t, err)
	f := m.Face(0)

	assert.Equal(t, pt(0.5, 0.5, 0), f.Center())
	assert.Equal(t, 2, f.IndexOf(f.Edge(2)))
	assert.True(t, f.HasVertex(f.Vertex(3)))

	// Quad: one step past the end of edge 0 (0→1).
	assert.Same(t, f.Vertex(2), f.OppositeVertex(f.Edge(0)))
	assert.Nil(t, f.OppositeVertex(mesh.NewEdge(mesh.NewVertex(pt(0, 0, 0)), mesh.NewVertex(pt(1, 0, 0)))))

	assert.Same(t, f.Edge(1), f.EdgeBetween(f.Vertex(2), f.Vertex(1)))
	assert.Nil(t, f.EdgeBetween(f.Vertex(0), f.Vertex(2)))

	tri, err := mesh.NewPolygon([]vec3.T{pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)})
	require.NoError(t, err)
	g := tri.Face(0)
	assert.Same(t, g.Vertex(2), g.OppositeVertex(g.Edge(0)))
	assert.Same(t, g.Vertex(0), g.OppositeVertex(g.Edge(1)))
}
