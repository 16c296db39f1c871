// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - the Build orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: Build(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   - Safety: constructors never panic; they return sentinel-wrapped errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Constructor places geometry into m using the resolved builderConfig.
// Constructors validate parameters before touching m.
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// Build creates a mesh with mopts, resolves bopts and applies cons in order.
// The first constructor error is returned wrapped as "Build: %w"; the partly
// built mesh is discarded.
func Build(mopts []mesh.Option, bopts []Option, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.New(mopts...)
	if err := Apply(m, bopts, cons...); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}

// Apply runs cons against an existing mesh.
func Apply(m *mesh.Mesh, bopts []Option, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("nil mesh: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return err
		}
	}

	return nil
}

// meshErr wraps a mesh rejection with the method tag, keeping both the
// ErrConstructFailed class and the mesh sentinel visible to errors.Is.
func meshErr(method string, err error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
}
