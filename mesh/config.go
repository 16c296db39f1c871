// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: File-backed configuration (YAML) mapped onto functional options.

package mesh

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the serialisable subset of mesh options.
//
// Zero fields are replaced by defaults when loaded, so a file only needs the
// keys it wants to change:
//
//	tolerance: 1e-4
//	planar_tolerance: 1e-3
//	max_loop_edges: 64
//	face_dedup: geometric
type Config struct {
	Tolerance       float64 `yaml:"tolerance"`
	PlanarTolerance float64 `yaml:"planar_tolerance"`
	MaxLoopEdges    int     `yaml:"max_loop_edges"`
	FaceDedup       string  `yaml:"face_dedup"`
}

// DefaultConfig returns the configuration matching the package defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:       DefaultTolerance,
		PlanarTolerance: DefaultPlanarTolerance,
		MaxLoopEdges:    DefaultMaxLoopEdges,
		FaceDedup:       FaceDedupIdentity.String(),
	}
}

// ParseFaceDedup maps "identity"/"geometric" (case-insensitive) to a policy.
func ParseFaceDedup(s string) (FaceDedup, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "identity":
		return FaceDedupIdentity, nil
	case "geometric":
		return FaceDedupGeometric, nil
	default:
		return FaceDedupIdentity, fmt.Errorf("face_dedup %q: %w", s, ErrInvalidConfig)
	}
}

// LoadConfig decodes YAML from r on top of DefaultConfig and validates it.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("LoadConfig: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// LoadConfigFile opens path and calls LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfigFile: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate reports the first out-of-range field wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("tolerance %v: %w", c.Tolerance, ErrInvalidConfig)
	}
	if c.PlanarTolerance < 0 || c.PlanarTolerance >= 1 || math.IsNaN(c.PlanarTolerance) {
		return fmt.Errorf("planar_tolerance %v: %w", c.PlanarTolerance, ErrInvalidConfig)
	}
	if c.MaxLoopEdges < minLoopEdges {
		return fmt.Errorf("max_loop_edges %d: %w", c.MaxLoopEdges, ErrInvalidConfig)
	}
	if _, err := ParseFaceDedup(c.FaceDedup); err != nil {
		return err
	}

	return nil
}

// Options converts a validated Config into functional options.
// Call Validate (or obtain the Config from LoadConfig) first; invalid values panic.
func (c Config) Options() []Option {
	dedup, _ := ParseFaceDedup(c.FaceDedup)

	return []Option{
		WithTolerance(c.Tolerance),
		WithPlanarTolerance(c.PlanarTolerance),
		WithMaxLoopEdges(c.MaxLoopEdges),
		WithFaceDedup(dedup),
	}
}
