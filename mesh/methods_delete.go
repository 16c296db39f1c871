// SPDX-License-Identifier: MIT
//
// File: methods_delete.go
// Role: Cascading deletion by index and by identity.
//
// Cascade:
//   - Vertex → incident faces, incident edges, then itself.
//   - Edge   → incident faces, then itself (unlinked from both endpoints).
//   - Face   → only its own back-references.
//   - Every cascaded element also leaves its mesh collection.

package mesh

import (
	"fmt"
	"log/slog"
)

// DeleteVertex removes vertex i with its incident faces and edges.
func (m *Mesh) DeleteVertex(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.vertices) {
		return fmt.Errorf("DeleteVertex(%d): %w", i, ErrIndexOutOfRange)
	}
	m.dropVertex(m.vertices[i])

	return nil
}

// DeleteEdge removes edge i with its incident faces.
func (m *Mesh) DeleteEdge(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.edges) {
		return fmt.Errorf("DeleteEdge(%d): %w", i, ErrIndexOutOfRange)
	}
	m.dropEdge(m.edges[i])

	return nil
}

// DeleteFace removes face i.
func (m *Mesh) DeleteFace(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.faces) {
		return fmt.Errorf("DeleteFace(%d): %w", i, ErrIndexOutOfRange)
	}
	m.dropFace(m.faces[i])

	return nil
}

// RemoveVertex removes v (identity) with its incident faces and edges.
func (m *Mesh) RemoveVertex(v *Vertex) error {
	if v == nil {
		return fmt.Errorf("RemoveVertex: %w", ErrNilVertex)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfVertex(v) < 0 {
		return fmt.Errorf("RemoveVertex(%d): %w", v.ID, ErrVertexNotFound)
	}
	m.dropVertex(v)

	return nil
}

// RemoveEdge removes e (identity) with its incident faces.
func (m *Mesh) RemoveEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("RemoveEdge: %w", ErrNilEdge)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfEdge(e) < 0 {
		return fmt.Errorf("RemoveEdge(%d): %w", e.ID, ErrEdgeNotFound)
	}
	m.dropEdge(e)

	return nil
}

// RemoveFace removes f (identity).
func (m *Mesh) RemoveFace(f *Face) error {
	if f == nil {
		return fmt.Errorf("RemoveFace: %w", ErrNilFace)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfFace(f) < 0 {
		return fmt.Errorf("RemoveFace(%d): %w", f.ID, ErrFaceNotFound)
	}
	m.dropFace(f)

	return nil
}

func (m *Mesh) dropFace(f *Face) {
	f.detach()
	removeFrom(&m.faces, f)
}

func (m *Mesh) dropEdge(e *Edge) {
	for _, f := range e.Faces() {
		m.dropFace(f)
	}
	e.v[0].unlinkEdge(e)
	e.v[1].unlinkEdge(e)
	removeFrom(&m.edges, e)
}

func (m *Mesh) dropVertex(v *Vertex) {
	for _, f := range v.Faces() {
		m.dropFace(f)
	}
	for _, e := range v.Edges() {
		m.dropEdge(e)
	}
	removeFrom(&m.vertices, v)
	m.cfg.logger.Debug("vertex deleted", slog.String("op", "delete"), slog.Uint64("vertex", v.ID))
}
