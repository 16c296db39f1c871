// SPDX-License-Identifier: MIT
//
// File: build_segments.go
// Role: Construction from unordered line segments: dedup merge + face induction.
//
// Stages:
//   1. Validate every segment (finite positions) before any mutation.
//   2. Create two vertices and one edge per non-degenerate segment.
//   3. Stable z→y→x sort; merge later vertices of a tolerance run into the run
//      head (existing mesh vertices are preferred as heads and never merged away).
//   4. Drop new vertices left without edges.
//   5. Trace faces from every surviving new edge; accept in trace order.
//
// Concurrency:
//   - Stages 2..5 run under the mesh write lock.

package mesh

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"
)

// NewFromSegments builds a mesh from unordered segments.
func NewFromSegments(segs []Segment, opts ...Option) (*Mesh, error) {
	m := New(opts...)
	if err := m.AddSegments(segs); err != nil {
		return nil, err
	}

	return m, nil
}

// AddSegments merges segs into m. New endpoints within tolerance of each other
// or of an existing vertex are merged; duplicate connections are dropped; faces
// are traced from the new edges. Zero-length segments are skipped.
//
// Errors:
//   - ErrInvalidPosition: a segment endpoint has a NaN or infinite component.
func (m *Mesh) AddSegments(segs []Segment) error {
	for i, s := range segs {
		if !isFinite(s.Start) || !isFinite(s.End) {
			return fmt.Errorf("AddSegments: segment %d: %w", i, ErrInvalidPosition)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cr := m.cfg.creator
	existing := len(m.vertices)
	newEdges := make([]*Edge, 0, len(segs))
	for _, s := range segs {
		if PositionsEqual(s.Start, s.End, m.cfg.tolerance) {
			continue
		}
		a := cr.CreateVertex(s.Start)
		b := cr.CreateVertex(s.End)
		m.vertices = append(m.vertices, a, b)
		newEdges = append(newEdges, cr.CreateEdge(a, b))
	}
	m.edges = append(m.edges, newEdges...)

	m.mergeVertices(existing)

	live := lo.Filter(newEdges, func(e *Edge, _ int) bool { return m.indexOfEdge(e) >= 0 })
	m.induceFaces(live)

	return nil
}

// mergeVertices collapses tolerance-equal vertices. Vertices at index >= from
// are new; only new vertices are merged away.
func (m *Mesh) mergeVertices(from int) {
	isNew := make(map[*Vertex]bool, len(m.vertices)-from)
	for _, v := range m.vertices[from:] {
		isNew[v] = true
	}
	eps := m.cfg.tolerance

	order := append([]*Vertex(nil), m.vertices...)
	sort.SliceStable(order, func(i, j int) bool {
		return compareZYX(order[i].Pos, order[j].Pos, eps) < 0
	})

	removed := make(map[*Vertex]bool)
	merges := 0
	for i := 0; i < len(order); {
		j := i + 1
		for j < len(order) && PositionsEqual(order[i].Pos, order[j].Pos, eps) {
			j++
		}
		run := order[i:j]
		keep, ok := lo.Find(run, func(v *Vertex) bool { return !isNew[v] })
		if !ok {
			keep = run[0]
		}
		for _, dup := range run {
			if dup == keep || !isNew[dup] {
				continue
			}
			m.mergeInto(keep, dup)
			removed[dup] = true
			merges++
		}
		i = j
	}

	for _, v := range m.vertices[from:] {
		if !removed[v] && len(v.edges) == 0 {
			removed[v] = true
		}
	}
	if len(removed) > 0 {
		m.vertices = lo.Filter(m.vertices, func(v *Vertex, _ int) bool { return !removed[v] })
	}
	m.cfg.logger.Debug("vertices merged",
		slog.String("op", "merge"), slog.Int("merged", merges), slog.Int("removed", len(removed)))
}

// mergeInto moves every edge of dup onto keep. Edges that would become loops
// or duplicate an existing keep connection are dropped. dup carries no faces:
// merged vertices are always new and faces are traced after the merge.
func (m *Mesh) mergeInto(keep, dup *Vertex) {
	for _, e := range dup.Edges() {
		far := e.Other(dup)
		if far == keep || keep.EdgeTo(far) != nil {
			m.cfg.logger.Debug("duplicate edge dropped",
				slog.String("op", "merge"), slog.Uint64("edge", e.ID))
			m.dropEdge(e)
			continue
		}
		dup.unlinkEdge(e)
		e.replaceVertex(dup, keep)
		keep.addEdge(e, far)
		far.relink(e, keep)
	}
}

// InduceFaces traces faces from every edge used by fewer than two faces and
// returns the number of faces added.
func (m *Mesh) InduceFaces() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.faces)
	open := lo.Filter(m.edges, func(e *Edge, _ int) bool { return len(e.faces) < 2 })
	m.induceFaces(open)

	return len(m.faces) - before
}

// TraceFaces traces the loops through e and returns the faces they bound, in
// trace order. Loops already bounding a member face yield that face; new
// faces are accepted into m under the configured dedup policy, and dropped
// duplicates are not returned.
//
// Errors:
//   - ErrNilEdge, ErrEdgeNotFound.
func (m *Mesh) TraceFaces(e *Edge) ([]*Face, error) {
	if e == nil {
		return nil, fmt.Errorf("TraceFaces: %w", ErrNilEdge)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfEdge(e) < 0 {
		return nil, fmt.Errorf("TraceFaces: edge %d: %w", e.ID, ErrEdgeNotFound)
	}
	out := make([]*Face, 0, 2)
	for _, f := range m.traceFaces(e) {
		if m.acceptFace(f) || lo.Contains(m.faces, f) {
			out = append(out, f)
		}
	}

	return out, nil
}

func (m *Mesh) induceFaces(edges []*Edge) {
	for _, e := range edges {
		if m.indexOfEdge(e) < 0 {
			continue
		}
		for _, f := range m.traceFaces(e) {
			m.acceptFace(f)
		}
	}
}

// acceptFace adds a traced face unless the same face object is already a
// member. Under FaceDedupGeometric a new face with the vertex set of a member
// face is detached instead.
func (m *Mesh) acceptFace(f *Face) bool {
	if lo.Contains(m.faces, f) {
		return false
	}
	if m.geometricDuplicate(f) {
		m.cfg.logger.Debug("geometric duplicate face dropped",
			slog.String("op", "induce"), slog.Uint64("face", f.ID))
		f.detach()
		return false
	}
	m.faces = append(m.faces, f)

	return true
}

// geometricDuplicate reports whether FaceDedupGeometric is active and a member
// face other than f uses exactly f's vertices.
func (m *Mesh) geometricDuplicate(f *Face) bool {
	if m.cfg.dedup != FaceDedupGeometric {
		return false
	}
	return lo.ContainsBy(m.faces, func(g *Face) bool { return g != f && g.sameVertexSet(f) })
}
