// SPDX-License-Identifier: MIT
//
// File: edge.go
// Role: Edge queries and endpoint rewiring.

package mesh

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/ungerik/go3d/float64/vec3"
)

// Vertex returns endpoint i (0 or 1), nil otherwise.
func (e *Edge) Vertex(i int) *Vertex {
	if i < 0 || i > 1 {
		return nil
	}
	return e.v[i]
}

// Endpoints returns both endpoints in creation order.
func (e *Edge) Endpoints() (*Vertex, *Vertex) { return e.v[0], e.v[1] }

// Other returns the endpoint opposite v, or nil when v is not an endpoint.
func (e *Edge) Other(v *Vertex) *Vertex {
	switch v {
	case e.v[0]:
		return e.v[1]
	case e.v[1]:
		return e.v[0]
	}
	return nil
}

// Contains reports whether v is an endpoint.
func (e *Edge) Contains(v *Vertex) bool { return v != nil && (e.v[0] == v || e.v[1] == v) }

// SharedVertex returns an endpoint common to e and o, or nil.
func (e *Edge) SharedVertex(o *Edge) *Vertex {
	if o == nil {
		return nil
	}
	if o.Contains(e.v[0]) {
		return e.v[0]
	}
	if o.Contains(e.v[1]) {
		return e.v[1]
	}
	return nil
}

// SharesVertex reports whether e and o have a common endpoint.
func (e *Edge) SharesVertex(o *Edge) bool { return e.SharedVertex(o) != nil }

// Faces returns a copy of the incident faces.
func (e *Edge) Faces() []*Face { return append([]*Face(nil), e.faces...) }

// FaceCount returns the number of incident faces.
func (e *Edge) FaceCount() int { return len(e.faces) }

// IsFree reports whether no face uses e.
func (e *Edge) IsFree() bool { return len(e.faces) == 0 }

// Length is the distance between the endpoints.
func (e *Edge) Length() float64 { return vec3.Distance(&e.v[0].Pos, &e.v[1].Pos) }

// Mid is the midpoint.
func (e *Edge) Mid() vec3.T { return vec3.Interpolate(&e.v[0].Pos, &e.v[1].Pos, 0.5) }

// IsOnEdge reports whether p lies strictly between the endpoints, at most eps
// away from the segment and not within eps of either endpoint.
func (e *Edge) IsOnEdge(p vec3.T, eps float64) bool {
	a, b := e.v[0].Pos, e.v[1].Pos
	if PositionsEqual(p, a, eps) || PositionsEqual(p, b, eps) {
		return false
	}
	ab := vec3.Sub(&b, &a)
	ap := vec3.Sub(&p, &a)
	l2 := vec3.Dot(&ab, &ab)
	if l2 == 0 {
		return false
	}
	t := vec3.Dot(&ap, &ab) / l2
	if t <= 0 || t >= 1 {
		return false
	}
	foot := vec3.Interpolate(&a, &b, t)

	return vec3.Distance(&foot, &p) <= eps
}

// String renders "e<ID>[v<ID>-v<ID>]".
func (e *Edge) String() string {
	if e == nil {
		return "e<nil>"
	}
	return fmt.Sprintf("e%d[v%d-v%d]", e.ID, e.v[0].ID, e.v[1].ID)
}

// replaceVertex swaps endpoint old for nw. Adjacency lists are not touched.
func (e *Edge) replaceVertex(old, nw *Vertex) {
	for i := range e.v {
		if e.v[i] == old {
			e.v[i] = nw
		}
	}
}

func (e *Edge) removeFace(f *Face) { e.faces = lo.Without(e.faces, f) }
