// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_geometry.go: Segments, PointGrid and Polygon: caller-supplied geometry
// placed through the configured scale and origin.

package builder

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Segments returns a Constructor that adds segs through mesh.AddSegments.
func Segments(segs []mesh.Segment) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		placed := make([]mesh.Segment, len(segs))
		for i, s := range segs {
			placed[i] = mesh.Segment{Start: cfg.place(s.Start), End: cfg.place(s.End)}
		}
		if err := m.AddSegments(placed); err != nil {
			return meshErr(MethodSegments, err)
		}
		return nil
	}
}

// PointGrid returns a Constructor that adds grid through mesh.AddGrid with
// the configured diagonal.
func PointGrid(grid [][]vec3.T) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if len(grid) < MinGridDim || len(grid[0]) < MinGridDim {
			return fmt.Errorf("%s: grid smaller than %d×%d: %w", MethodPointGrid, MinGridDim, MinGridDim, ErrTooFewVertices)
		}
		placed := make([][]vec3.T, len(grid))
		for i, row := range grid {
			placed[i] = cfg.placeAll(row)
		}
		if err := m.AddGrid(placed, len(placed), len(placed[0]), cfg.diagonal); err != nil {
			return meshErr(MethodPointGrid, err)
		}
		return nil
	}
}

// Polygon returns a Constructor that adds one face over points.
func Polygon(points []vec3.T) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if len(points) < MinCycleNodes {
			return fmt.Errorf("%s: %d points < min=%d: %w", MethodPolygon, len(points), MinCycleNodes, ErrTooFewVertices)
		}
		if err := m.AddPolygons([][]vec3.T{cfg.placeAll(points)}); err != nil {
			return meshErr(MethodPolygon, err)
		}
		return nil
	}
}
