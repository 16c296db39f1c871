// SPDX-License-Identifier: MIT
//
// File: mesh.go
// Role: Mesh construction (empty), collection accessors and index lookup.
//
// Determinism:
//   - Collections keep insertion order; replacements are appended at the end.
//
// Concurrency:
//   - Queries take the read lock, edits the write lock. Internal helpers
//     (lower-case) assume the caller already holds the lock.

package mesh

import (
	"sync"

	"github.com/samber/lo"
	"github.com/ungerik/go3d/float64/vec3"
)

// New returns an empty mesh.
func New(opts ...Option) *Mesh {
	cfg := newConfig(opts...)
	mu := cfg.lock
	if mu == nil {
		mu = &sync.RWMutex{}
	}

	return &Mesh{mu: mu, cfg: cfg}
}

// Tolerance returns the coordinate tolerance in use.
func (m *Mesh) Tolerance() float64 { return m.cfg.tolerance }

// Creator returns the element factory in use.
func (m *Mesh) Creator() Creator { return m.cfg.creator }

// VertexCount returns |V|.
func (m *Mesh) VertexCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.vertices)
}

// EdgeCount returns |E|.
func (m *Mesh) EdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.edges)
}

// FaceCount returns |F|.
func (m *Mesh) FaceCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.faces)
}

// Vertex returns vertex i, or nil when i is out of range.
func (m *Mesh) Vertex(i int) *Vertex {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return at(m.vertices, i)
}

// Edge returns edge i, or nil when i is out of range.
func (m *Mesh) Edge(i int) *Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return at(m.edges, i)
}

// Face returns face i, or nil when i is out of range.
func (m *Mesh) Face(i int) *Face {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return at(m.faces, i)
}

// Vertices returns a snapshot of the vertex collection.
func (m *Mesh) Vertices() []*Vertex {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]*Vertex(nil), m.vertices...)
}

// Edges returns a snapshot of the edge collection.
func (m *Mesh) Edges() []*Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]*Edge(nil), m.edges...)
}

// Faces returns a snapshot of the face collection.
func (m *Mesh) Faces() []*Face {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]*Face(nil), m.faces...)
}

// IndexOfVertex returns the collection index of v (identity), or -1.
func (m *Mesh) IndexOfVertex(v *Vertex) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.IndexOf(m.vertices, v)
}

// IndexOfEdge returns the collection index of e (identity), or -1.
func (m *Mesh) IndexOfEdge(e *Edge) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.IndexOf(m.edges, e)
}

// IndexOfFace returns the collection index of f (identity), or -1.
func (m *Mesh) IndexOfFace(f *Face) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.IndexOf(m.faces, f)
}

// BoundingBox returns the component-wise extremes of all vertex positions.
// ok is false for a mesh without vertices.
func (m *Mesh) BoundingBox() (minP, maxP vec3.T, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.vertices) == 0 {
		return vec3.T{}, vec3.T{}, false
	}
	minP, maxP = m.vertices[0].Pos, m.vertices[0].Pos
	for _, v := range m.vertices[1:] {
		for k := 0; k < 3; k++ {
			if v.Pos[k] < minP[k] {
				minP[k] = v.Pos[k]
			}
			if v.Pos[k] > maxP[k] {
				maxP[k] = v.Pos[k]
			}
		}
	}

	return minP, maxP, true
}

func at[T any](s []*T, i int) *T {
	if i < 0 || i >= len(s) {
		return nil
	}
	return s[i]
}

// removeFrom deletes x from *s by identity. Reports whether x was present.
func removeFrom[T comparable](s *[]T, x T) bool {
	i := lo.IndexOf(*s, x)
	if i < 0 {
		return false
	}
	*s = removeAt(*s, i)

	return true
}

func (m *Mesh) indexOfVertex(v *Vertex) int { return lo.IndexOf(m.vertices, v) }
func (m *Mesh) indexOfEdge(e *Edge) int     { return lo.IndexOf(m.edges, e) }
func (m *Mesh) indexOfFace(f *Face) int     { return lo.IndexOf(m.faces, f) }
