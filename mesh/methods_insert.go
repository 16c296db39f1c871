// SPDX-License-Identifier: MIT
//
// File: methods_insert.go
// Role: Vertex insertion into a face (coincident / on-edge / interior) and the
//       fan helpers shared with center triangulation.
//
// Transaction:
//   - Stage 1 (no mutation): membership, loop consistency, coincidence,
//     on-edge detection and consistency of every face across the split edge.
//   - Stage 2: create spokes and triangles, then drop the replaced faces and edge.

package mesh

import (
	"fmt"
	"log/slog"

	"github.com/ungerik/go3d/float64/vec3"
)

// InsertVertex inserts v into f.
//
//   - v within tolerance of a loop vertex w: returns w, mesh unchanged.
//   - v on loop edge e: e is split at v; f becomes one triangle per loop edge
//     except e, and every other face using e is re-fanned around v the same way.
//   - otherwise: f becomes one triangle per loop edge, all sharing v.
//
// v must be a fresh, unlinked vertex (typically from Creator().CreateVertex).
//
// Errors:
//   - ErrNilFace, ErrNilVertex, ErrFaceNotFound, ErrInvalidPosition.
//   - ErrInconsistent: v is already linked, or a loop across the split edge is broken.
func (m *Mesh) InsertVertex(f *Face, v *Vertex) (*Vertex, error) {
	if f == nil {
		return nil, fmt.Errorf("InsertVertex: %w", ErrNilFace)
	}
	if v == nil {
		return nil, fmt.Errorf("InsertVertex: %w", ErrNilVertex)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(v.edges) > 0 || len(v.faces) > 0 || m.indexOfVertex(v) >= 0 {
		return nil, fmt.Errorf("InsertVertex: vertex %d already linked: %w", v.ID, ErrInconsistent)
	}
	existing, onIdx, err := m.planInsert("InsertVertex", f, v.Pos)
	if err != nil || existing != nil {
		return existing, err
	}
	m.applyInsert(f, v, onIdx)

	return v, nil
}

// InsertPoint is InsertVertex with a vertex created through the Creator only
// when p does not coincide with a loop vertex.
func (m *Mesh) InsertPoint(f *Face, p vec3.T) (*Vertex, error) {
	if f == nil {
		return nil, fmt.Errorf("InsertPoint: %w", ErrNilFace)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, onIdx, err := m.planInsert("InsertPoint", f, p)
	if err != nil || existing != nil {
		return existing, err
	}
	v := m.cfg.creator.CreateVertex(p)
	m.applyInsert(f, v, onIdx)

	return v, nil
}

// planInsert runs every insertion check. It returns the coincident loop vertex
// if any, otherwise the index of the loop edge containing p (-1 for interior).
func (m *Mesh) planInsert(op string, f *Face, p vec3.T) (*Vertex, int, error) {
	if m.indexOfFace(f) < 0 {
		return nil, -1, fmt.Errorf("%s: face %d: %w", op, f.ID, ErrFaceNotFound)
	}
	if !isFinite(p) {
		return nil, -1, fmt.Errorf("%s: %w", op, ErrInvalidPosition)
	}
	if err := m.checkFace(op, f); err != nil {
		return nil, -1, err
	}

	eps := m.cfg.tolerance
	for _, w := range f.verts {
		if PositionsEqual(w.Pos, p, eps) {
			return w, -1, nil
		}
	}

	onIdx := -1
	for i, e := range f.edges {
		if e.IsOnEdge(p, eps) {
			onIdx = i
			break
		}
	}
	if onIdx < 0 {
		return nil, -1, nil
	}

	onEdge := f.edges[onIdx]
	for _, g := range onEdge.faces {
		if g == f {
			continue
		}
		if m.indexOfFace(g) < 0 {
			m.logInconsistent(op, "face across split edge is not a member", slog.Uint64("face", g.ID))
			return nil, -1, fmt.Errorf("%s: face %d across edge %d: %w", op, g.ID, onEdge.ID, ErrInconsistent)
		}
		if err := m.checkFace(op, g); err != nil {
			return nil, -1, err
		}
	}

	return nil, onIdx, nil
}

// applyInsert performs the planned insertion of v (not yet a member).
func (m *Mesh) applyInsert(f *Face, v *Vertex, onIdx int) {
	m.vertices = append(m.vertices, v)
	if onIdx < 0 {
		m.fanAround(f.verts, f.edges, v, -1, nil)
		m.dropFace(f)
		return
	}

	onEdge := f.edges[onIdx]
	n := len(f.edges)
	spokes, _ := m.fanAround(f.verts, f.edges, v, onIdx, nil)
	halves := map[*Vertex]*Edge{
		f.verts[onIdx]:       spokes[(onIdx-1+n)%n],
		f.verts[(onIdx+1)%n]: spokes[onIdx],
	}

	others := make([]*Face, 0, len(onEdge.faces))
	for _, g := range onEdge.faces {
		if g != f {
			others = append(others, g)
		}
	}
	m.dropFace(f)
	for _, g := range others {
		m.replaceEdge(g, onEdge, halves, v)
	}
	m.dropEdge(onEdge)
}

// replaceEdge re-fans g around v, which splits g's loop edge old; the two
// half-edges of old are reused as spokes. g is dropped.
func (m *Mesh) replaceEdge(g *Face, old *Edge, halves map[*Vertex]*Edge, v *Vertex) {
	m.fanAround(g.verts, g.edges, v, g.IndexOf(old), halves)
	m.dropFace(g)
}

// fanAround builds spokes[i] = verts[i+1]–v (reusing entries of reuse keyed by
// the loop vertex) and triangles [edges[i], spokes[i], spokes[i-1]] for every
// i except skip. New edges and faces join the mesh collections.
func (m *Mesh) fanAround(verts []*Vertex, edges []*Edge, v *Vertex, skip int, reuse map[*Vertex]*Edge) ([]*Edge, []*Face) {
	cr := m.cfg.creator
	n := len(edges)
	spokes := make([]*Edge, n)
	for i := 0; i < n; i++ {
		w := verts[(i+1)%n]
		if e, ok := reuse[w]; ok {
			spokes[i] = e
			continue
		}
		spokes[i] = cr.CreateEdge(w, v)
		m.edges = append(m.edges, spokes[i])
	}

	faces := make([]*Face, 0, n)
	for i := 0; i < n; i++ {
		if i == skip {
			continue
		}
		if tri := cr.CreateFace([]*Edge{edges[i], spokes[i], spokes[(i-1+n)%n]}); tri != nil {
			m.faces = append(m.faces, tri)
			faces = append(faces, tri)
		}
	}

	return spokes, faces
}

// checkFace wraps checkLoop with Error-level logging.
func (m *Mesh) checkFace(op string, f *Face) error {
	if err := f.checkLoop(); err != nil {
		m.logInconsistent(op, err.Error(), slog.Uint64("face", f.ID))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (m *Mesh) logInconsistent(op, msg string, attrs ...any) {
	m.cfg.logger.Error("mesh consistency violation", append([]any{slog.String("op", op), slog.String("detail", msg)}, attrs...)...)
}
