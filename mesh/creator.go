// SPDX-License-Identifier: MIT
//
// File: creator.go
// Role: Element factory. The kernel never allocates Vertex/Edge/Face itself.
// Contract:
//   - CreateEdge registers the edge with both endpoints (edges/linked aligned).
//   - CreateFace registers the face with every loop edge and loop vertex.
//   - The kernel validates every loop before calling CreateFace.
//
// AI-Hints (file):
//   - Wrap DefaultCreator to attach Data; keep the linking it performs.

package mesh

import (
	"sync/atomic"

	"github.com/ungerik/go3d/float64/vec3"
)

// Creator produces linked mesh elements.
//
// Implementations may return specialised records (typically by setting Data)
// but must link them exactly as DefaultCreator does. A Creator must not add
// elements to a Mesh; the kernel owns collection membership.
type Creator interface {
	CreateVertex(pos vec3.T) *Vertex
	CreateEdge(v1, v2 *Vertex) *Edge
	CreateFace(edges []*Edge) *Face
}

// DefaultCreator builds base records with fresh IDs.
type DefaultCreator struct{}

// CreateVertex returns NewVertex(pos).
func (DefaultCreator) CreateVertex(pos vec3.T) *Vertex { return NewVertex(pos) }

// CreateEdge returns NewEdge(v1, v2).
func (DefaultCreator) CreateEdge(v1, v2 *Vertex) *Edge { return NewEdge(v1, v2) }

// CreateFace returns NewFace(edges).
func (DefaultCreator) CreateFace(edges []*Edge) *Face { return NewFace(edges) }

var idSeq atomic.Uint64

func nextID() uint64 { return idSeq.Add(1) }

// NewVertex allocates an unlinked vertex at pos.
func NewVertex(pos vec3.T) *Vertex {
	return &Vertex{ID: nextID(), Pos: pos}
}

// NewEdge allocates an edge v1–v2 and registers it with both endpoints.
// Returns nil when an endpoint is nil or v1 == v2.
func NewEdge(v1, v2 *Vertex) *Edge {
	if v1 == nil || v2 == nil || v1 == v2 {
		return nil
	}
	e := &Edge{ID: nextID(), v: [2]*Vertex{v1, v2}}
	v1.addEdge(e, v2)
	v2.addEdge(e, v1)

	return e
}

// NewFace allocates a face over the closed edge loop and registers it with
// every edge and vertex of the loop. Vertex i is the vertex shared by
// edges[i-1] and edges[i]. Returns nil when edges is not a simple closed loop.
func NewFace(edges []*Edge) *Face {
	verts, err := loopVertices(edges)
	if err != nil {
		return nil
	}
	f := &Face{
		ID:    nextID(),
		edges: append([]*Edge(nil), edges...),
		verts: verts,
	}
	for _, e := range f.edges {
		e.faces = append(e.faces, f)
	}
	for _, v := range f.verts {
		v.addFace(f)
	}

	return f
}

// loopVertices derives the cyclic vertex order of an edge loop.
//
// Stage 1: v[1] is the vertex shared by edges[0] and edges[1]; v[0] is the
// other endpoint of edges[0].
// Stage 2: walk edges[1..n-1], each must continue from the previous vertex.
// Stage 3: edges[n-1] must return to v[0]; no vertex may repeat.
func loopVertices(edges []*Edge) ([]*Vertex, error) {
	n := len(edges)
	if n < minLoopEdges {
		return nil, ErrBadLoop
	}
	for _, e := range edges {
		if e == nil {
			return nil, ErrNilEdge
		}
	}

	second := edges[0].SharedVertex(edges[1])
	if second == nil {
		return nil, ErrBadLoop
	}
	verts := make([]*Vertex, n)
	verts[0] = edges[0].Other(second)
	verts[1] = second
	seen := map[*Vertex]struct{}{verts[0]: {}, verts[1]: {}}

	for i := 1; i < n; i++ {
		if !edges[i].Contains(verts[i]) {
			return nil, ErrBadLoop
		}
		next := edges[i].Other(verts[i])
		if i == n-1 {
			if next != verts[0] {
				return nil, ErrBadLoop
			}
			break
		}
		if _, dup := seen[next]; dup {
			return nil, ErrBadLoop
		}
		seen[next] = struct{}{}
		verts[i+1] = next
	}

	return verts, nil
}
