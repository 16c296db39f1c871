// SPDX-License-Identifier: MIT
package mesh_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec2"

	"github.com/katalvlaran/lvmesh/mesh"
)

func TestDup_RoundTrip(t *testing.T) {
	m, err := mesh.NewFromSegments(cubeSegments())
	require.NoError(t, err)
	m.Vertex(0).SetTexture(vec2.T{0.25, 0.75})
	m.Vertex(1).Data = "payload"

	cp := m.Dup()
	require.Equal(t, counts(m), counts(cp))
	requireSound(t, cp)

	orig := make(map[any]bool)
	for _, v := range m.Vertices() {
		orig[v] = true
	}
	for _, e := range m.Edges() {
		orig[e] = true
	}
	for _, f := range m.Faces() {
		orig[f] = true
	}

	for i, v := range cp.Vertices() {
		assert.Equal(t, m.Vertex(i).Pos, v.Pos)
		assert.False(t, orig[v], "vertex %d shared", i)
		for _, w := range v.LinkedVertices() {
			assert.False(t, orig[w])
		}
	}
	for _, e := range cp.Edges() {
		assert.False(t, orig[e])
		a, b := e.Endpoints()
		assert.False(t, orig[a] || orig[b])
	}
	for _, f := range cp.Faces() {
		assert.False(t, orig[f])
		for _, e := range f.Edges() {
			assert.False(t, orig[e])
		}
	}

	uv, ok := cp.Vertex(0).Texture()
	require.True(t, ok)
	assert.Equal(t, vec2.T{0.25, 0.75}, uv)
	assert.Equal(t, "payload", cp.Vertex(1).Data)
}

func TestDup_MutationsAreIndependent(t *testing.T) {
	m, err := mesh.NewFromGrid(gridPoints(3, 3), mesh.DiagonalA)
	require.NoError(t, err)
	before := counts(m)
	pos := m.Vertex(4).Pos

	cp := m.Dup()
	cp.Vertex(4).Pos[2] = 10
	cp.Vertex(0).SetTexture(vec2.T{1, 1})
	require.NoError(t, cp.DeleteVertex(4))
	_, err = cp.Triangulate(cp.Face(0), mesh.DiagonalB)
	require.NoError(t, err)
	cp.TriangulateAtCenter()

	assert.Equal(t, before, counts(m))
	assert.Equal(t, pos, m.Vertex(4).Pos)
	_, ok := m.Vertex(0).Texture()
	assert.False(t, ok)
	requireSound(t, m)
	requireSound(t, cp)
}

func TestDup_LockDomain(t *testing.T) {
	var mu sync.RWMutex
	m, err := mesh.NewPolygon(unitQuad(), mesh.WithLock(&mu))
	require.NoError(t, err)

	cp := m.Dup()
	mu.Lock()
	done := make(chan int, 1)
	go func() { done <- cp.FaceCount() }()
	select {
	case <-done:
		t.Fatal("copy read through a held shared lock")
	case <-time.After(20 * time.Millisecond):
	}
	mu.Unlock()
	assert.Equal(t, 1, <-done)
}

func TestJoin(t *testing.T) {
	a, err := mesh.NewFromSegments(triangleSegments(0))
	require.NoError(t, err)
	b, err := mesh.NewPolygon(unitQuad())
	require.NoError(t, err)

	j := mesh.Join(a, nil, b)
	assert.Equal(t, [3]int{7, 7, 2}, counts(j))
	assert.Equal(t, -1, j.IndexOfFace(a.Face(0)), "inputs are copied")
	requireSound(t, j)

	assert.Equal(t, [3]int{0, 0, 0}, counts(mesh.Join()))
}

func TestBoundingBox(t *testing.T) {
	_, _, ok := mesh.New().BoundingBox()
	assert.False(t, ok)

	m, err := mesh.NewFromSegments(cubeSegments())
	require.NoError(t, err)
	lo, hi, ok := m.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, pt(0, 0, 0), lo)
	assert.Equal(t, pt(1, 1, 1), hi)
}
