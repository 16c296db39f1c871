// SPDX-License-Identifier: MIT
//
// File: face.go
// Role: Face loop queries and loop helpers (consistency check, detach, set comparison).
//
// Invariant:
//   - len(f.edges) == len(f.verts) >= 3.
//   - f.edges[i] joins f.verts[i] and f.verts[(i+1)%n].

package mesh

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/ungerik/go3d/float64/vec3"
)

// Edges returns a copy of the edge loop.
func (f *Face) Edges() []*Edge { return append([]*Edge(nil), f.edges...) }

// Vertices returns a copy of the vertex loop.
func (f *Face) Vertices() []*Vertex { return append([]*Vertex(nil), f.verts...) }

// Len returns the number of loop edges (equal to the number of vertices).
func (f *Face) Len() int { return len(f.edges) }

// Edge returns loop edge i modulo Len; nil for an empty face.
func (f *Face) Edge(i int) *Edge {
	n := len(f.edges)
	if n == 0 {
		return nil
	}
	return f.edges[((i%n)+n)%n]
}

// Vertex returns loop vertex i modulo Len; nil for an empty face.
func (f *Face) Vertex(i int) *Vertex {
	n := len(f.verts)
	if n == 0 {
		return nil
	}
	return f.verts[((i%n)+n)%n]
}

// IndexOf returns the loop index of e, or -1.
func (f *Face) IndexOf(e *Edge) int { return lo.IndexOf(f.edges, e) }

// Contains reports whether e is a loop edge.
func (f *Face) Contains(e *Edge) bool { return lo.Contains(f.edges, e) }

// HasVertex reports whether v is a loop vertex.
func (f *Face) HasVertex(v *Vertex) bool { return lo.Contains(f.verts, v) }

// OppositeVertex returns the loop vertex farthest (in loop steps) from e:
// the vertex ⌈(n-2)/2⌉ steps past the end of e. For a triangle this is the
// vertex not on e. Returns nil when e is not in the loop.
func (f *Face) OppositeVertex(e *Edge) *Vertex {
	i := f.IndexOf(e)
	if i < 0 {
		return nil
	}
	return f.verts[oppositeIndex(i, len(f.verts))]
}

func oppositeIndex(edgeIdx, n int) int {
	return (edgeIdx + 1 + (n-1)/2) % n
}

// EdgeBetween returns the loop edge joining a and b, or nil.
func (f *Face) EdgeBetween(a, b *Vertex) *Edge {
	e, ok := lo.Find(f.edges, func(e *Edge) bool { return e.Contains(a) && e.Contains(b) })
	if !ok {
		return nil
	}
	return e
}

// Center is the centroid of the loop vertices.
func (f *Face) Center() vec3.T { return centroid(positionsOf(f.verts)) }

// Normal is the Newell normal of the loop (zero for a degenerate loop).
func (f *Face) Normal() vec3.T { return newellNormal(positionsOf(f.verts)) }

// String renders "f<ID>{v<ID>,v<ID>,...}".
func (f *Face) String() string {
	if f == nil {
		return "f<nil>"
	}
	ids := lo.Map(f.verts, func(v *Vertex, _ int) string { return fmt.Sprintf("v%d", v.ID) })
	return fmt.Sprintf("f%d{%s}", f.ID, strings.Join(ids, ","))
}

// checkLoop verifies the local loop invariant including back-references.
func (f *Face) checkLoop() error {
	n := len(f.edges)
	if n < minLoopEdges || n != len(f.verts) {
		return fmt.Errorf("face %d: %d edges, %d vertices: %w", f.ID, n, len(f.verts), ErrInconsistent)
	}
	for i, e := range f.edges {
		a, b := f.verts[i], f.verts[(i+1)%n]
		if e == nil || a == nil {
			return fmt.Errorf("face %d: nil loop element at %d: %w", f.ID, i, ErrInconsistent)
		}
		if !e.Contains(a) || !e.Contains(b) {
			return fmt.Errorf("face %d: edge %d does not join loop vertices %d/%d: %w",
				f.ID, e.ID, a.ID, b.ID, ErrInconsistent)
		}
		if !lo.Contains(e.faces, f) {
			return fmt.Errorf("face %d: edge %d lacks back-reference: %w", f.ID, e.ID, ErrInconsistent)
		}
	}
	for _, v := range f.verts {
		if !lo.Contains(v.faces, f) {
			return fmt.Errorf("face %d: vertex %d lacks back-reference: %w", f.ID, v.ID, ErrInconsistent)
		}
	}

	return nil
}

// detach severs every back-reference to f and clears its loop.
func (f *Face) detach() {
	for _, e := range f.edges {
		e.removeFace(f)
	}
	for _, v := range f.verts {
		v.removeFace(f)
	}
	f.edges, f.verts = nil, nil
}

// sameVertexSet reports whether f and g use exactly the same vertices.
func (f *Face) sameVertexSet(g *Face) bool {
	if len(f.verts) != len(g.verts) {
		return false
	}
	return lo.EveryBy(f.verts, func(v *Vertex) bool { return lo.Contains(g.verts, v) })
}

// sameEdgeSet reports whether f's loop consists of exactly edges.
func (f *Face) sameEdgeSet(edges []*Edge) bool {
	if len(f.edges) != len(edges) {
		return false
	}
	return lo.EveryBy(edges, func(e *Edge) bool { return lo.Contains(f.edges, e) })
}
