// SPDX-License-Identifier: MIT
//
// File: vertex.go
// Role: Vertex queries, attributes and the adjacency primitives used by the kernel.
//
// Invariant:
//   - len(v.linked) == len(v.edges) and v.linked[i] == v.edges[i].Other(v).
//
// Concurrency:
//   - Plain reads; the owning Mesh lock is not taken here.

package mesh

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Edges returns a copy of the incident edges in link order.
func (v *Vertex) Edges() []*Edge { return append([]*Edge(nil), v.edges...) }

// EdgeCount returns the number of incident edges.
func (v *Vertex) EdgeCount() int { return len(v.edges) }

// Edge returns the i-th incident edge or nil when i is out of range.
func (v *Vertex) Edge(i int) *Edge {
	if i < 0 || i >= len(v.edges) {
		return nil
	}
	return v.edges[i]
}

// Faces returns a copy of the incident faces.
func (v *Vertex) Faces() []*Face { return append([]*Face(nil), v.faces...) }

// FaceCount returns the number of incident faces.
func (v *Vertex) FaceCount() int { return len(v.faces) }

// Face returns the i-th incident face or nil when i is out of range.
func (v *Vertex) Face(i int) *Face {
	if i < 0 || i >= len(v.faces) {
		return nil
	}
	return v.faces[i]
}

// LinkedVertices returns a copy of the adjacent vertices, index-aligned with Edges.
func (v *Vertex) LinkedVertices() []*Vertex { return append([]*Vertex(nil), v.linked...) }

// LinkedCount returns the number of adjacent vertices (equal to EdgeCount).
func (v *Vertex) LinkedCount() int { return len(v.linked) }

// LinkedVertex returns the i-th adjacent vertex or nil when i is out of range.
func (v *Vertex) LinkedVertex(i int) *Vertex {
	if i < 0 || i >= len(v.linked) {
		return nil
	}
	return v.linked[i]
}

// EdgeTo returns the first incident edge whose other endpoint is w, or nil.
func (v *Vertex) EdgeTo(w *Vertex) *Edge {
	if i := lo.IndexOf(v.linked, w); i >= 0 {
		return v.edges[i]
	}
	return nil
}

// OtherEdges returns the incident edges except e.
// Returns ErrEdgeNotFound when e is not incident to v.
func (v *Vertex) OtherEdges(e *Edge) ([]*Edge, error) {
	if !lo.Contains(v.edges, e) {
		return nil, fmt.Errorf("OtherEdges: vertex %d: %w", v.ID, ErrEdgeNotFound)
	}
	return lo.Without(v.edges, e), nil
}

// Normal returns the explicit normal if one was set, otherwise AverageNormal.
func (v *Vertex) Normal() vec3.T {
	if v.normal != nil {
		return *v.normal
	}
	return v.AverageNormal()
}

// HasNormal reports whether an explicit normal was set.
func (v *Vertex) HasNormal() bool { return v.normal != nil }

// SetNormal stores an explicit normal.
func (v *Vertex) SetNormal(n vec3.T) { v.normal = &n }

// ClearNormal drops the explicit normal.
func (v *Vertex) ClearNormal() { v.normal = nil }

// Texture returns the texture coordinate and whether one was set.
func (v *Vertex) Texture() (vec2.T, bool) {
	if v.texture == nil {
		return vec2.T{}, false
	}
	return *v.texture, true
}

// SetTexture stores a texture coordinate.
func (v *Vertex) SetTexture(uv vec2.T) { v.texture = &uv }

// AverageNormal is the normalised sum of incident face normals.
// A zero sum reports +Z: vertices without (non-degenerate) faces, and vertices
// whose incident faces wind oppositely so their normals cancel.
func (v *Vertex) AverageNormal() vec3.T {
	var sum vec3.T
	for _, f := range v.faces {
		n := f.Normal()
		sum.Add(&n)
	}
	if sum.Length() == 0 {
		return unitZ
	}

	return *sum.Normalize()
}

// IsValid reports whether the position has only finite components.
func (v *Vertex) IsValid() bool { return v != nil && isFinite(v.Pos) }

// Eq reports whether v and w are at the same position within eps.
func (v *Vertex) Eq(w *Vertex, eps float64) bool {
	if v == nil || w == nil {
		return v == w
	}
	return PositionsEqual(v.Pos, w.Pos, eps)
}

// String renders "v<ID>(x, y, z)".
func (v *Vertex) String() string {
	if v == nil {
		return "v<nil>"
	}
	return fmt.Sprintf("v%d(%g, %g, %g)", v.ID, v.Pos[0], v.Pos[1], v.Pos[2])
}

func (v *Vertex) addEdge(e *Edge, other *Vertex) {
	v.edges = append(v.edges, e)
	v.linked = append(v.linked, other)
}

// unlinkEdge removes e and its aligned linked entry. Reports whether e was present.
func (v *Vertex) unlinkEdge(e *Edge) bool {
	i := lo.IndexOf(v.edges, e)
	if i < 0 {
		return false
	}
	v.edges = removeAt(v.edges, i)
	v.linked = removeAt(v.linked, i)

	return true
}

// relink points the linked entry aligned with e at w.
func (v *Vertex) relink(e *Edge, w *Vertex) {
	if i := lo.IndexOf(v.edges, e); i >= 0 {
		v.linked[i] = w
	}
}

func (v *Vertex) addFace(f *Face) {
	if !lo.Contains(v.faces, f) {
		v.faces = append(v.faces, f)
	}
}

func (v *Vertex) removeFace(f *Face) { v.faces = lo.Without(v.faces, f) }

// removeAt deletes s[i] preserving order.
func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)

	return append(out, s[i+1:]...)
}
