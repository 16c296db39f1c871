// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy and mesh joining.
//
// Dup passes:
//   1. Copy every record (fresh ID, attributes copied, Data shallow).
//   2. Rewrite face loops, then edge endpoints/faces, then vertex adjacency
//      through old→new identity maps.
//
// The copy shares configuration, creator and logger with its source. It shares
// the lock only when the source was built WithLock.

package mesh

import (
	"sync"
)

// Dup returns a deep copy of m that shares no element with m.
func (m *Mesh) Dup() *Mesh {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.dup()
}

func (m *Mesh) dup() *Mesh {
	vmap := make(map[*Vertex]*Vertex, len(m.vertices))
	emap := make(map[*Edge]*Edge, len(m.edges))
	fmap := make(map[*Face]*Face, len(m.faces))

	out := &Mesh{cfg: m.cfg, mu: m.cfg.lock}
	if out.mu == nil {
		out.mu = &sync.RWMutex{}
	}
	out.vertices = make([]*Vertex, len(m.vertices))
	out.edges = make([]*Edge, len(m.edges))
	out.faces = make([]*Face, len(m.faces))

	for i, v := range m.vertices {
		cp := &Vertex{ID: nextID(), Pos: v.Pos, Data: v.Data}
		if v.normal != nil {
			n := *v.normal
			cp.normal = &n
		}
		if v.texture != nil {
			uv := *v.texture
			cp.texture = &uv
		}
		vmap[v] = cp
		out.vertices[i] = cp
	}
	for i, e := range m.edges {
		cp := &Edge{ID: nextID(), Data: e.Data}
		emap[e] = cp
		out.edges[i] = cp
	}
	for i, f := range m.faces {
		cp := &Face{ID: nextID(), Data: f.Data}
		fmap[f] = cp
		out.faces[i] = cp
	}

	// Pass 1: faces.
	for _, f := range m.faces {
		cp := fmap[f]
		cp.edges = remap(f.edges, emap)
		cp.verts = remap(f.verts, vmap)
	}
	// Pass 2: edges.
	for _, e := range m.edges {
		cp := emap[e]
		cp.v = [2]*Vertex{vmap[e.v[0]], vmap[e.v[1]]}
		cp.faces = remap(e.faces, fmap)
	}
	// Pass 3: vertices.
	for _, v := range m.vertices {
		cp := vmap[v]
		cp.edges = remap(v.edges, emap)
		cp.linked = remap(v.linked, vmap)
		cp.faces = remap(v.faces, fmap)
	}

	return out
}

// remap translates every element of s through mp, keeping order. Elements
// missing from mp become nil (only possible for an invalid source mesh).
func remap[T comparable](s []T, mp map[T]T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, x := range s {
		out[i] = mp[x]
	}
	return out
}

// Join returns a new mesh holding a deep copy of every input mesh, in order.
// The result takes its configuration from the first non-nil input.
func Join(meshes ...*Mesh) *Mesh {
	var out *Mesh
	for _, in := range meshes {
		if in == nil {
			continue
		}
		cp := in.Dup()
		if out == nil {
			out = cp
			continue
		}
		out.vertices = append(out.vertices, cp.vertices...)
		out.edges = append(out.edges, cp.edges...)
		out.faces = append(out.faces, cp.faces...)
	}
	if out == nil {
		return New()
	}

	return out
}
