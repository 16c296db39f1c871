// Package lvmesh is an in-memory polygon-mesh topology kernel: a mutable
// vertex/edge/face graph that stays consistent under local edits.
//
// What is in the box?
//
//	• mesh      Vertex, Edge, Face and the Mesh container; construction from
//	            unordered segments (vertex dedup + face-loop tracing), point
//	            grids and polygons; InsertVertex, DivideEdge, DivideFace,
//	            triangulation; cascading deletion; deep copy; validation;
//	            YAML-backed configuration.
//	• builder   composable constructors for fixture meshes (grids, n-gons,
//	            wheels, Platonic solids) behind one Build orchestrator.
//	• traverse  breadth- and depth-first walks over vertex and face
//	            adjacency, connected components.
//
// Quick start:
//
//	m, err := mesh.NewFromSegments(segs)        // dedup endpoints, trace faces
//	if err != nil { ... }
//	v, err := m.InsertPoint(m.Face(0), center)  // fan the face around a new vertex
//	res, _ := traverse.Vertices(m, v)           // hop distances from v
//
// Positions are github.com/ungerik/go3d/float64/vec3 values. Every exported
// Mesh method is safe for concurrent use; element accessors are not
// synchronised and must not race with edits.
package lvmesh
