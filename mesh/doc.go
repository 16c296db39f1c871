// Package mesh provides a mutable polygon-mesh topology kernel: a
// vertex/edge/face graph that stays consistent under local structural edits.
//
// The Mesh M = (V, E, F) owns three ordered, duplicate-free collections.
// Membership in a collection is the only ownership signal; elements keep
// non-owning back-references to each other:
//
//   - Vertex: position, optional normal/texture, incident edges, incident faces
//     and linked vertices (linked[i] is the far endpoint of edges[i]).
//   - Edge: exactly two endpoints and the faces that use it (0 = free edge,
//     2 = manifold interior, more = non-manifold).
//   - Face: a cyclic loop; edges[i] joins vertices[i] and vertices[(i+1)%n].
//
// Elements are never built directly by the kernel. Every vertex, edge and face
// goes through a Creator (DefaultCreator unless WithCreator is given), so callers
// can attach their own payloads through the Data field.
//
// Construction:
//
//	NewFromSegments(segs, opts...)     // unordered line segments → dedup → face tracing
//	NewFromGrid(grid, dir, opts...)    // u×v point grid → two triangles per cell
//	NewPolygon(points, opts...)        // single face
//	NewFromPolygons(polys, opts...)    // polygon soup with shared corners
//
// Local edits (closed transactions: preconditions are checked before the first
// mutation, so a returned error means the mesh is unchanged):
//
//	InsertVertex(f, v)                 // coincident / on-edge / interior insertion
//	DivideEdge(e, ratio)               // split edge, re-triangulate incident faces
//	DivideFace(f, ea, pa, eb, pb)      // cut a face in two
//	Triangulate / TriangulateAll / TriangulateAtCenter
//
// Deletion cascades (vertex → faces, edges; edge → faces; face → itself) and
// Dup returns a deep copy that shares no element with its source.
//
// Concurrency:
//
// Every exported Mesh method runs inside the mesh lock: read lock for queries,
// write lock for construction and edits. Meshes that must share one
// mutual-exclusion domain are created with WithLock. Element accessors
// (Vertex.Edges, Face.Vertices, ...) are plain reads and must not run while an
// edit on the owning mesh is in progress.
//
// Errors:
//
//	ErrNilVertex, ErrNilEdge, ErrNilFace      – nil argument
//	ErrVertexNotFound, ErrEdgeNotFound,
//	ErrFaceNotFound                           – element is not a member of the mesh
//	ErrIndexOutOfRange                        – index-based delete outside [0,n)
//	ErrEdgeNotInFace, ErrSameEdge,
//	ErrPointNotOnEdge, ErrBadRatio            – edit precondition violations
//	ErrGridTooSmall, ErrBadLoop,
//	ErrInvalidPosition                        – construction input violations
//	ErrInconsistent                           – topology disagrees with itself
//	ErrInvalidMesh                            – reported by Validate
//	ErrInvalidConfig                          – rejected configuration file
package mesh
