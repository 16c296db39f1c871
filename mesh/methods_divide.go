// SPDX-License-Identifier: MIT
//
// File: methods_divide.go
// Role: Edge and face splitting.
//
// Transaction:
//   - All checks (membership, ratio/points, loop consistency of every touched
//     face) run before the first element is created.

package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// DivideEdge splits e at Interpolate(v0, v1, ratio) and splits every incident
// face with a median edge from its opposite vertex (the loop vertex
// ⌈(n-2)/2⌉ steps past e) to the new vertex. The original edge and faces are
// removed. Returns the new vertex.
//
// Errors:
//   - ErrNilEdge, ErrEdgeNotFound.
//   - ErrBadRatio: ratio is not strictly between 0 and 1.
//   - ErrInconsistent: an incident face is not a member or its loop is broken.
func (m *Mesh) DivideEdge(e *Edge, ratio float64) (*Vertex, error) {
	if e == nil {
		return nil, fmt.Errorf("DivideEdge: %w", ErrNilEdge)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfEdge(e) < 0 {
		return nil, fmt.Errorf("DivideEdge: edge %d: %w", e.ID, ErrEdgeNotFound)
	}
	if !(ratio > 0 && ratio < 1) {
		return nil, fmt.Errorf("DivideEdge: ratio %v: %w", ratio, ErrBadRatio)
	}
	faces := e.Faces()
	for _, g := range faces {
		if m.indexOfFace(g) < 0 || g.IndexOf(e) < 0 {
			m.logInconsistent("DivideEdge", "incident face does not hold the edge")
			return nil, fmt.Errorf("DivideEdge: face %d on edge %d: %w", g.ID, e.ID, ErrInconsistent)
		}
		if err := m.checkFace("DivideEdge", g); err != nil {
			return nil, err
		}
	}

	cr := m.cfg.creator
	a, b := e.v[0], e.v[1]
	v := cr.CreateVertex(vec3.Interpolate(&a.Pos, &b.Pos, ratio))
	m.vertices = append(m.vertices, v)
	half := map[*Vertex]*Edge{a: cr.CreateEdge(a, v), b: cr.CreateEdge(v, b)}
	m.edges = append(m.edges, half[a], half[b])

	for _, g := range faces {
		n := len(g.edges)
		i := g.IndexOf(e)
		p, q := g.verts[i], g.verts[(i+1)%n]
		o := oppositeIndex(i, n)
		me := cr.CreateEdge(g.verts[o], v)
		m.edges = append(m.edges, me)

		loop1 := append([]*Edge{half[q]}, loopRange(g.edges, i+1, o)...)
		loop1 = append(loop1, me)
		loop2 := append([]*Edge{me}, loopRange(g.edges, o, i)...)
		loop2 = append(loop2, half[p])
		m.addCreatedFace(loop1)
		m.addCreatedFace(loop2)
	}
	m.dropEdge(e)

	return v, nil
}

// DivideFace cuts f along a new edge between pa (on ea) and pb (on eb). Both
// edges are split at the cut points; the loop edges between the cuts go to
// the face on their side. ea and eb stay in the mesh while another face still
// uses them and are removed otherwise. Returns the two new faces.
//
// Errors:
//   - ErrNilFace, ErrNilEdge, ErrFaceNotFound.
//   - ErrEdgeNotInFace: ea or eb is not a loop edge of f.
//   - ErrSameEdge: ea == eb.
//   - ErrPointNotOnEdge: a point is not strictly inside its edge (within tolerance).
//   - ErrInconsistent: f's loop is broken.
func (m *Mesh) DivideFace(f *Face, ea *Edge, pa vec3.T, eb *Edge, pb vec3.T) (*Face, *Face, error) {
	if f == nil {
		return nil, nil, fmt.Errorf("DivideFace: %w", ErrNilFace)
	}
	if ea == nil || eb == nil {
		return nil, nil, fmt.Errorf("DivideFace: %w", ErrNilEdge)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfFace(f) < 0 {
		return nil, nil, fmt.Errorf("DivideFace: face %d: %w", f.ID, ErrFaceNotFound)
	}
	i, j := f.IndexOf(ea), f.IndexOf(eb)
	if i < 0 || j < 0 {
		return nil, nil, fmt.Errorf("DivideFace: face %d: %w", f.ID, ErrEdgeNotInFace)
	}
	if ea == eb {
		return nil, nil, fmt.Errorf("DivideFace: edge %d: %w", ea.ID, ErrSameEdge)
	}
	eps := m.cfg.tolerance
	if !isFinite(pa) || !ea.IsOnEdge(pa, eps) {
		return nil, nil, fmt.Errorf("DivideFace: point A on edge %d: %w", ea.ID, ErrPointNotOnEdge)
	}
	if !isFinite(pb) || !eb.IsOnEdge(pb, eps) {
		return nil, nil, fmt.Errorf("DivideFace: point B on edge %d: %w", eb.ID, ErrPointNotOnEdge)
	}
	if err := m.checkFace("DivideFace", f); err != nil {
		return nil, nil, err
	}

	cr := m.cfg.creator
	n := len(f.edges)
	a0, a1 := f.verts[i], f.verts[(i+1)%n]
	b0, b1 := f.verts[j], f.verts[(j+1)%n]

	va, vb := cr.CreateVertex(pa), cr.CreateVertex(pb)
	m.vertices = append(m.vertices, va, vb)
	ha0, ha1 := cr.CreateEdge(a0, va), cr.CreateEdge(va, a1)
	hb0, hb1 := cr.CreateEdge(b0, vb), cr.CreateEdge(vb, b1)
	cut := cr.CreateEdge(va, vb)
	m.edges = append(m.edges, ha0, ha1, hb0, hb1, cut)

	loop1 := append([]*Edge{cut, ha1}, loopRange(f.edges, i+1, j)...)
	loop1 = append(loop1, hb0)
	loop2 := append([]*Edge{cut, hb1}, loopRange(f.edges, j+1, i)...)
	loop2 = append(loop2, ha0)

	f1 := m.addCreatedFace(loop1)
	f2 := m.addCreatedFace(loop2)
	m.dropFace(f)
	for _, e := range []*Edge{ea, eb} {
		if e.IsFree() {
			m.dropEdge(e)
		}
	}

	return f1, f2, nil
}

// loopRange returns edges[from], edges[from+1], … up to but excluding
// edges[to], walking cyclically.
func loopRange(edges []*Edge, from, to int) []*Edge {
	n := len(edges)
	to = ((to % n) + n) % n
	var out []*Edge
	for k := ((from % n) + n) % n; k != to; k = (k + 1) % n {
		out = append(out, edges[k])
	}

	return out
}

func (m *Mesh) addCreatedFace(loop []*Edge) *Face {
	f := m.cfg.creator.CreateFace(loop)
	if f != nil {
		m.faces = append(m.faces, f)
	}
	return f
}
