// Package builder assembles fixture and primitive meshes from composable
// constructors.
//
// One orchestrator, Build(mopts, bopts, cons...), creates a mesh.Mesh with the
// mesh options, resolves the builder options and applies every Constructor in
// order. Constructors place geometry through the mesh's own construction
// paths (AddSegments, AddGrid, AddPolygons), so vertex dedup, face tracing and
// the configured Creator apply exactly as they do for direct callers.
//
// Constructors:
//
//   - Segments(segs):      unordered segments, faces traced.
//   - PointGrid(grid):     explicit point grid, two triangles per cell.
//   - Grid(rows, cols):    unit-spaced grid in the XY plane (optional z jitter).
//   - Polygon(points):     one face.
//   - Cycle(n):            regular n-gon face.
//   - Wheel(n):            rim of n-1 vertices plus a hub; n-1 triangles traced.
//   - PlatonicSolid(name): closed convex shell of one of the five solids.
//
// Options:
//
//   - WithScale(s), WithOrigin(p): affine placement p' = origin + s·p.
//   - WithDiagonal(d):             cell split for grids.
//   - WithSeed(seed), WithRand(r): random source for jitter.
//   - WithJitter(a):               uniform z jitter in [-a, a] for Grid.
//
// Option constructors panic on meaningless input; constructors return errors
// wrapping ErrTooFewVertices, ErrOptionViolation, ErrNeedRandSource or
// ErrConstructFailed. Results are deterministic for equal inputs and seed.
package builder
