// SPDX-License-Identifier: MIT
//
// File: methods_triangulate.go
// Role: Fan triangulation from a corner (Diagonal A/B) or from the face center.
//
// Fan from a corner:
//   - DiagonalA fans from loop vertex 0, DiagonalB from loop vertex 1.
//   - For a quad v0..v3 this yields the diagonal v0–v2 (A) or v1–v3 (B).
//   - Triangles are left as they are.

package mesh

import (
	"fmt"
	"log/slog"
)

// Triangulate replaces f by a fan of triangles and returns them. A triangle is
// returned unchanged.
//
// Errors:
//   - ErrNilFace, ErrFaceNotFound, ErrInconsistent.
func (m *Mesh) Triangulate(f *Face, dir Diagonal) ([]*Face, error) {
	if f == nil {
		return nil, fmt.Errorf("Triangulate: %w", ErrNilFace)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfFace(f) < 0 {
		return nil, fmt.Errorf("Triangulate: face %d: %w", f.ID, ErrFaceNotFound)
	}
	if err := m.checkFace("Triangulate", f); err != nil {
		return nil, err
	}
	if len(f.edges) == minLoopEdges {
		return []*Face{f}, nil
	}

	return m.triangulate(f, dir), nil
}

// TriangulateAll fan-triangulates every non-triangular face and returns how
// many faces were replaced. Faces with a broken loop are skipped and logged.
func (m *Mesh) TriangulateAll(dir Diagonal) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, f := range append([]*Face(nil), m.faces...) {
		if len(f.edges) == minLoopEdges {
			continue
		}
		if err := m.checkFace("TriangulateAll", f); err != nil {
			continue
		}
		m.triangulate(f, dir)
		count++
	}
	m.cfg.logger.Debug("faces triangulated",
		slog.String("op", "TriangulateAll"), slog.String("diagonal", dir.String()), slog.Int("faces", count))

	return count
}

// TriangulateFaceAtCenter inserts a vertex at f's centroid and fans f around
// it (one triangle per loop edge). Returns the center vertex.
//
// Errors:
//   - ErrNilFace, ErrFaceNotFound, ErrInconsistent.
func (m *Mesh) TriangulateFaceAtCenter(f *Face) (*Vertex, error) {
	if f == nil {
		return nil, fmt.Errorf("TriangulateFaceAtCenter: %w", ErrNilFace)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfFace(f) < 0 {
		return nil, fmt.Errorf("TriangulateFaceAtCenter: face %d: %w", f.ID, ErrFaceNotFound)
	}
	if err := m.checkFace("TriangulateFaceAtCenter", f); err != nil {
		return nil, err
	}

	return m.triangulateAtCenter(f), nil
}

// TriangulateAtCenter applies TriangulateFaceAtCenter to every face (triangles
// included) and returns the number of faces replaced.
func (m *Mesh) TriangulateAtCenter() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, f := range append([]*Face(nil), m.faces...) {
		if err := m.checkFace("TriangulateAtCenter", f); err != nil {
			continue
		}
		m.triangulateAtCenter(f)
		count++
	}

	return count
}

// triangulate fans f from its apex r0 (vertex 0 or 1). With r_k the loop
// vertices and e_k the loop edges starting at the apex, diagonals are
// d_k = r0–r_k (k = 2..n-2) and triangle k is [d_k|e_0, e_k, d_{k+1}|e_{n-1}].
func (m *Mesh) triangulate(f *Face, dir Diagonal) []*Face {
	cr := m.cfg.creator
	n := len(f.edges)
	s := 0
	if dir == DiagonalB {
		s = 1
	}
	r := func(k int) *Vertex { return f.verts[(s+k)%n] }
	e := func(k int) *Edge { return f.edges[(s+k)%n] }

	diag := make([]*Edge, n)
	for k := 2; k <= n-2; k++ {
		diag[k] = cr.CreateEdge(r(0), r(k))
		m.edges = append(m.edges, diag[k])
	}

	out := make([]*Face, 0, n-2)
	for k := 1; k <= n-2; k++ {
		left, right := e(0), e(n-1)
		if k > 1 {
			left = diag[k]
		}
		if k < n-2 {
			right = diag[k+1]
		}
		if tri := m.addCreatedFace([]*Edge{left, e(k), right}); tri != nil {
			out = append(out, tri)
		}
	}
	m.dropFace(f)

	return out
}

func (m *Mesh) triangulateAtCenter(f *Face) *Vertex {
	c := m.cfg.creator.CreateVertex(f.Center())
	m.vertices = append(m.vertices, c)
	m.fanAround(f.verts, f.edges, c, -1, nil)
	m.dropFace(f)

	return c
}
