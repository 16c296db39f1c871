// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Structural validity check over the whole mesh.
//
// Checks:
//   - Collections are duplicate-free.
//   - Vertices: finite position; edges/linked aligned; incident edges and faces
//     are members and reference the vertex back.
//   - Edges: distinct member endpoints that list the edge; faces are members
//     that contain the edge.
//   - Faces: loop invariant with back-references; loop elements are members.

package mesh

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

// Validate returns nil for a structurally sound mesh, otherwise every
// violation found, joined with errors.Join; each wraps ErrInvalidMesh.
func (m *Mesh) Validate() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.validate()
}

// IsValid reports whether Validate returns nil.
func (m *Mesh) IsValid() bool { return m.Validate() == nil }

func (m *Mesh) validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		err := fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidMesh)
		m.cfg.logger.Error("mesh consistency violation", slog.String("op", "Validate"), slog.String("detail", err.Error()))
		errs = append(errs, err)
	}

	vset := lo.SliceToMap(m.vertices, func(v *Vertex) (*Vertex, struct{}) { return v, struct{}{} })
	eset := lo.SliceToMap(m.edges, func(e *Edge) (*Edge, struct{}) { return e, struct{}{} })
	fset := lo.SliceToMap(m.faces, func(f *Face) (*Face, struct{}) { return f, struct{}{} })

	if d := lo.FindDuplicates(m.vertices); len(d) > 0 {
		fail("%d duplicate vertex entries", len(d))
	}
	if d := lo.FindDuplicates(m.edges); len(d) > 0 {
		fail("%d duplicate edge entries", len(d))
	}
	if d := lo.FindDuplicates(m.faces); len(d) > 0 {
		fail("%d duplicate face entries", len(d))
	}

	for _, v := range m.vertices {
		if !isFinite(v.Pos) {
			fail("vertex %d: non-finite position", v.ID)
		}
		if len(v.edges) != len(v.linked) {
			fail("vertex %d: %d edges but %d linked vertices", v.ID, len(v.edges), len(v.linked))
			continue
		}
		for i, e := range v.edges {
			if _, ok := eset[e]; !ok || e == nil {
				fail("vertex %d: incident edge is not a member", v.ID)
				continue
			}
			if e.Other(v) != v.linked[i] {
				fail("vertex %d: linked[%d] is not the far endpoint of edge %d", v.ID, i, e.ID)
			}
		}
		for _, f := range v.faces {
			if _, ok := fset[f]; !ok || f == nil {
				fail("vertex %d: incident face is not a member", v.ID)
				continue
			}
			if !f.HasVertex(v) {
				fail("vertex %d: face %d does not contain it", v.ID, f.ID)
			}
		}
	}

	for _, e := range m.edges {
		for _, v := range e.v {
			if _, ok := vset[v]; !ok || v == nil {
				fail("edge %d: endpoint is not a member", e.ID)
				continue
			}
			if !lo.Contains(v.edges, e) {
				fail("edge %d: endpoint %d does not list it", e.ID, v.ID)
			}
		}
		if e.v[0] == e.v[1] {
			fail("edge %d: both endpoints are the same vertex", e.ID)
		}
		for _, f := range e.faces {
			if _, ok := fset[f]; !ok || f == nil {
				fail("edge %d: incident face is not a member", e.ID)
				continue
			}
			if !f.Contains(e) {
				fail("edge %d: face %d does not contain it", e.ID, f.ID)
			}
		}
	}

	for _, f := range m.faces {
		if err := f.checkLoop(); err != nil {
			fail("%v", err)
			continue
		}
		for _, e := range f.edges {
			if _, ok := eset[e]; !ok {
				fail("face %d: edge %d is not a member", f.ID, e.ID)
			}
		}
		for _, v := range f.verts {
			if _, ok := vset[v]; !ok {
				fail("face %d: vertex %d is not a member", f.ID, v.ID)
			}
		}
	}

	return errors.Join(errs...)
}
