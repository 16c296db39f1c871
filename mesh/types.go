// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Element records (Vertex, Edge, Face), the Mesh container and sentinel errors.
// Policy:
//   - Cross-references between elements are non-owning; the Mesh collections own.
//   - Adjacency slices are unexported and only rewritten by kernel code.

package mesh

import (
	"errors"
	"sync"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Sentinel errors for mesh operations.
var (
	// ErrNilVertex indicates a nil *Vertex argument.
	ErrNilVertex = errors.New("mesh: vertex is nil")

	// ErrNilEdge indicates a nil *Edge argument.
	ErrNilEdge = errors.New("mesh: edge is nil")

	// ErrNilFace indicates a nil *Face argument.
	ErrNilFace = errors.New("mesh: face is nil")

	// ErrVertexNotFound indicates the vertex is not a member of the mesh.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrEdgeNotFound indicates the edge is not a member of the mesh (or not incident to a vertex).
	ErrEdgeNotFound = errors.New("mesh: edge not found")

	// ErrFaceNotFound indicates the face is not a member of the mesh.
	ErrFaceNotFound = errors.New("mesh: face not found")

	// ErrIndexOutOfRange indicates an element index outside [0, count).
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrEdgeNotInFace indicates an edge that is not part of the given face loop.
	ErrEdgeNotInFace = errors.New("mesh: edge not in face")

	// ErrSameEdge indicates that both cut edges of DivideFace are the same edge.
	ErrSameEdge = errors.New("mesh: cut edges must differ")

	// ErrPointNotOnEdge indicates a cut point that does not lie strictly inside its edge.
	ErrPointNotOnEdge = errors.New("mesh: point not on edge")

	// ErrBadRatio indicates a split ratio outside the open interval (0,1).
	ErrBadRatio = errors.New("mesh: ratio out of range")

	// ErrGridTooSmall indicates a point grid smaller than 2×2 or with short rows.
	ErrGridTooSmall = errors.New("mesh: grid too small")

	// ErrBadLoop indicates an edge or point sequence that does not form a closed loop.
	ErrBadLoop = errors.New("mesh: not a closed loop")

	// ErrInvalidPosition indicates a position with NaN or infinite components.
	ErrInvalidPosition = errors.New("mesh: invalid position")

	// ErrInconsistent indicates topology that disagrees with itself; the edit is refused.
	ErrInconsistent = errors.New("mesh: inconsistent topology")

	// ErrInvalidMesh wraps every violation reported by Validate.
	ErrInvalidMesh = errors.New("mesh: invalid mesh")

	// ErrInvalidConfig indicates a rejected configuration value.
	ErrInvalidConfig = errors.New("mesh: invalid config")
)

// Vertex is a topology node.
//
// ID is unique per process; Data carries an optional payload attached by a Creator.
type Vertex struct {
	// ID is assigned at creation and never reused.
	ID uint64

	// Pos is the vertex position.
	Pos vec3.T

	// Data is an opaque payload for specialised variants. Dup copies it shallowly.
	Data any

	normal  *vec3.T
	texture *vec2.T

	edges  []*Edge   // incident edges
	faces  []*Face   // incident faces
	linked []*Vertex // linked[i] == edges[i].Other(v)
}

// Edge is an undirected link between exactly two vertices.
type Edge struct {
	// ID is assigned at creation and never reused.
	ID uint64

	// Data is an opaque payload for specialised variants.
	Data any

	v     [2]*Vertex
	faces []*Face
}

// Face is a cyclic loop of edges bounding a planar polygon.
//
// edges[i] joins verts[i] and verts[(i+1)%n].
type Face struct {
	// ID is assigned at creation and never reused.
	ID uint64

	// Data is an opaque payload for specialised variants.
	Data any

	edges []*Edge
	verts []*Vertex
}

// Segment is an unordered line segment used as construction input.
type Segment struct {
	Start vec3.T
	End   vec3.T
}

// Diagonal selects how quads are split into triangles.
type Diagonal int

const (
	// DiagonalA splits a quad v0..v3 along v0–v2 (grid: (i,j)–(i+1,j+1)).
	DiagonalA Diagonal = iota
	// DiagonalB splits a quad v0..v3 along v1–v3 (grid: (i+1,j)–(i,j+1)).
	DiagonalB
)

// String returns "A" or "B".
func (d Diagonal) String() string {
	if d == DiagonalB {
		return "B"
	}
	return "A"
}

// Mesh owns ordered vertex, edge and face collections.
//
// mu is the mutual-exclusion domain; it is private to the mesh unless a shared
// lock was supplied through WithLock.
type Mesh struct {
	mu  *sync.RWMutex
	cfg config

	vertices []*Vertex
	edges    []*Edge
	faces    []*Face
}
