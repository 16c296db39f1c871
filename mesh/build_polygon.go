// SPDX-License-Identifier: MIT
//
// File: build_polygon.go
// Role: Construction from explicit polygons (single face or polygon soup) and
//       registration of externally created faces.
//
// Contract:
//   - Corners within tolerance of an existing or earlier corner share one vertex.
//   - Consecutive corners share one edge (existing connections are reused).
//   - All input checks run before the first mutation.

package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// NewPolygon returns a mesh with the single face points[0] → … → points[n-1].
func NewPolygon(points []vec3.T, opts ...Option) (*Mesh, error) {
	return NewFromPolygons([][]vec3.T{points}, opts...)
}

// NewFromPolygons builds a mesh from polygon corner loops.
func NewFromPolygons(polys [][]vec3.T, opts ...Option) (*Mesh, error) {
	m := New(opts...)
	if err := m.AddPolygons(polys); err != nil {
		return nil, err
	}

	return m, nil
}

// AddPolygons adds one face per corner loop.
//
// Errors:
//   - ErrInvalidPosition: a corner has a NaN or infinite component.
//   - ErrBadLoop: fewer than three corners, or two corners of one loop resolve
//     to the same vertex.
func (m *Mesh) AddPolygons(polys [][]vec3.T) error {
	for pi, poly := range polys {
		if len(poly) < minLoopEdges {
			return fmt.Errorf("AddPolygons: polygon %d has %d corners: %w", pi, len(poly), ErrBadLoop)
		}
		for _, p := range poly {
			if !isFinite(p) {
				return fmt.Errorf("AddPolygons: polygon %d: %w", pi, ErrInvalidPosition)
			}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Stage 1: resolve corners to keys; key < base is an existing vertex index.
	base := len(m.vertices)
	var planned []vec3.T
	keys := make([][]int, len(polys))
	for pi, poly := range polys {
		keys[pi] = make([]int, len(poly))
		seen := make(map[int]bool, len(poly))
		for ci, p := range poly {
			k := m.resolveCorner(p, planned)
			if k < 0 {
				planned = append(planned, p)
				k = base + len(planned) - 1
			}
			if seen[k] {
				return fmt.Errorf("AddPolygons: polygon %d corner %d repeats a vertex: %w", pi, ci, ErrBadLoop)
			}
			seen[k] = true
			keys[pi][ci] = k
		}
	}

	// Stage 2: mutate.
	cr := m.cfg.creator
	for _, p := range planned {
		m.vertices = append(m.vertices, cr.CreateVertex(p))
	}
	for _, ks := range keys {
		n := len(ks)
		loop := make([]*Edge, n)
		for i := range ks {
			a, b := m.vertices[ks[i]], m.vertices[ks[(i+1)%n]]
			if e := a.EdgeTo(b); e != nil {
				loop[i] = e
				continue
			}
			e := cr.CreateEdge(a, b)
			m.edges = append(m.edges, e)
			loop[i] = e
		}
		if existingFace(loop) != nil {
			continue
		}
		if f := cr.CreateFace(loop); f != nil {
			m.acceptFace(f)
		}
	}

	return nil
}

// resolveCorner returns the key of the first existing or planned vertex within
// tolerance of p, or -1.
func (m *Mesh) resolveCorner(p vec3.T, planned []vec3.T) int {
	eps := m.cfg.tolerance
	for i, v := range m.vertices {
		if PositionsEqual(v.Pos, p, eps) {
			return i
		}
	}
	for i, q := range planned {
		if PositionsEqual(q, p, eps) {
			return len(m.vertices) + i
		}
	}
	return -1
}

// AddFace registers a linked face (as returned by a Creator) together with
// any of its edges and vertices that are not members yet. Reports whether the
// face was added; a face that is already a member, or that duplicates a member
// under FaceDedupGeometric, is not added. A geometric duplicate is detached
// while its edges stay in the mesh as free edges.
//
// Errors:
//   - ErrNilFace: f is nil.
//   - ErrInconsistent: f's loop or back-references are broken.
func (m *Mesh) AddFace(f *Face) (bool, error) {
	if f == nil {
		return false, fmt.Errorf("AddFace: %w", ErrNilFace)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := f.checkLoop(); err != nil {
		return false, fmt.Errorf("AddFace: %w", err)
	}
	if m.indexOfFace(f) >= 0 {
		return false, nil
	}
	for _, v := range f.verts {
		if m.indexOfVertex(v) < 0 {
			m.vertices = append(m.vertices, v)
		}
	}
	for _, e := range f.edges {
		if m.indexOfEdge(e) < 0 {
			m.edges = append(m.edges, e)
		}
	}
	if m.geometricDuplicate(f) {
		f.detach()
		return false, nil
	}
	m.faces = append(m.faces, f)

	return true, nil
}
