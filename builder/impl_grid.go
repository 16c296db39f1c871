// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols points at (r, c, 0) before placement, row-major.
//   • Two triangles per cell split by cfg.diagonal (see mesh.AddGrid).
//   • With WithJitter(a), each height is drawn from U[-a, a] using cfg.rng.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewVertices).
//   • jitter > 0 without rng → ErrNeedRandSource.
//
// Complexity:
//   • Time: O(rows*cols).
//
// Determinism:
//   • Jitter draws happen in row-major order; fixed seed ⇒ fixed heights.

package builder

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Grid returns a Constructor that builds a rows×cols triangulated grid.
func Grid(rows, cols int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if cfg.jitter > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: jitter=%g: %w", MethodGrid, cfg.jitter, ErrNeedRandSource)
		}

		pts := make([][]vec3.T, rows)
		for r := 0; r < rows; r++ {
			pts[r] = make([]vec3.T, cols)
			for c := 0; c < cols; c++ {
				var z float64
				if cfg.jitter > 0 {
					z = (2*cfg.rng.Float64() - 1) * cfg.jitter
				}
				pts[r][c] = cfg.place(vec3.T{float64(r), float64(c), z})
			}
		}

		if err := m.AddGrid(pts, rows, cols, cfg.diagonal); err != nil {
			return meshErr(MethodGrid, err)
		}
		return nil
	}
}
