// SPDX-License-Identifier: MIT
//
// File: build_grid.go
// Role: Construction from a u×v point grid, two triangles per cell.
//
// Layout (grid[i][j], i along u, j along v):
//   - row edge    r[i][j] = (i,j)–(i+1,j)
//   - column edge c[i][j] = (i,j)–(i,j+1)
//   - DiagonalA   d[i][j] = (i,j)–(i+1,j+1)
//   - DiagonalB   d[i][j] = (i+1,j)–(i,j+1)
//
// Both triangles of a cell run counter-clockwise in (i, j) index space, so
// every face normal of a planar grid points the same way.
//
// Counts for u×v points:
//   V = u·v, E = (u-1)·v + u·(v-1) + (u-1)·(v-1), F = 2·(u-1)·(v-1).

package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

const minGridSide = 2

// NewFromGrid builds a mesh from grid using len(grid) × len(grid[0]) points.
func NewFromGrid(grid [][]vec3.T, dir Diagonal, opts ...Option) (*Mesh, error) {
	v := 0
	if len(grid) > 0 {
		v = len(grid[0])
	}
	return NewFromGridN(grid, len(grid), v, dir, opts...)
}

// NewFromGridN builds a mesh from the leading uCount × vCount block of grid.
func NewFromGridN(grid [][]vec3.T, uCount, vCount int, dir Diagonal, opts ...Option) (*Mesh, error) {
	m := New(opts...)
	if err := m.AddGrid(grid, uCount, vCount, dir); err != nil {
		return nil, err
	}

	return m, nil
}

// AddGrid appends a triangulated grid patch. Grid points are assumed distinct;
// no merging with existing vertices is performed.
//
// Errors:
//   - ErrGridTooSmall: uCount < 2, vCount < 2, or grid smaller than uCount × vCount.
//   - ErrInvalidPosition: a grid point has a NaN or infinite component.
func (m *Mesh) AddGrid(grid [][]vec3.T, uCount, vCount int, dir Diagonal) error {
	if uCount < minGridSide || vCount < minGridSide || len(grid) < uCount {
		return fmt.Errorf("AddGrid(%d×%d): %w", uCount, vCount, ErrGridTooSmall)
	}
	for i := 0; i < uCount; i++ {
		if len(grid[i]) < vCount {
			return fmt.Errorf("AddGrid: row %d has %d points, need %d: %w", i, len(grid[i]), vCount, ErrGridTooSmall)
		}
		for j := 0; j < vCount; j++ {
			if !isFinite(grid[i][j]) {
				return fmt.Errorf("AddGrid: point (%d,%d): %w", i, j, ErrInvalidPosition)
			}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cr := m.cfg.creator
	vtx := make([][]*Vertex, uCount)
	for i := range vtx {
		vtx[i] = make([]*Vertex, vCount)
		for j := range vtx[i] {
			vtx[i][j] = cr.CreateVertex(grid[i][j])
			m.vertices = append(m.vertices, vtx[i][j])
		}
	}

	edge := func(a, b *Vertex) *Edge {
		e := cr.CreateEdge(a, b)
		m.edges = append(m.edges, e)
		return e
	}
	row := make([][]*Edge, uCount-1)
	for i := range row {
		row[i] = make([]*Edge, vCount)
		for j := range row[i] {
			row[i][j] = edge(vtx[i][j], vtx[i+1][j])
		}
	}
	col := make([][]*Edge, uCount)
	for i := range col {
		col[i] = make([]*Edge, vCount-1)
		for j := range col[i] {
			col[i][j] = edge(vtx[i][j], vtx[i][j+1])
		}
	}

	face := func(es ...*Edge) {
		if f := cr.CreateFace(es); f != nil {
			m.faces = append(m.faces, f)
		}
	}
	for i := 0; i < uCount-1; i++ {
		for j := 0; j < vCount-1; j++ {
			if dir == DiagonalB {
				d := edge(vtx[i+1][j], vtx[i][j+1])
				face(row[i][j], d, col[i][j])
				face(col[i+1][j], row[i][j+1], d)
				continue
			}
			d := edge(vtx[i][j], vtx[i+1][j+1])
			face(row[i][j], col[i+1][j], d)
			face(d, row[i][j+1], col[i][j])
		}
	}

	return nil
}
