// SPDX-License-Identifier: MIT
//
// File: trace.go
// Role: Face loop tracing over an unordered edge graph.
//
// Algorithm (per start edge a–b):
//   - Every non-collinear neighbour c of an endpoint seeds a reference normal n
//     (the normal of the plane through a, b, c). Parallel normals are traced once.
//   - For each n both half-edges a→b and b→a are walked. At each vertex the next
//     edge is the in-plane candidate with the smallest counter-clockwise angle
//     about n from the candidate direction to the reverse incoming direction.
//   - A walk closes on returning to its start vertex. Loops that revisit a vertex,
//     exceed maxLoopEdges, dead-end, or wind clockwise about n are discarded.
//   - A loop whose edge set already bounds a face yields that face.
//
// Complexity:
//   - O(k · L · d) per start edge for k seeds, loop length L and vertex degree d.

package mesh

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// traceFaces returns the faces bounded by loops through start. Existing faces
// are returned as-is; new loops are built with the configured Creator.
func (m *Mesh) traceFaces(start *Edge) []*Face {
	var out []*Face
	for _, n := range m.seedNormals(start) {
		for _, from := range start.v {
			loop, ok := m.walkLoop(start, from, n)
			if !ok {
				continue
			}
			if f := existingFace(loop); f != nil {
				out = appendUnique(out, f)
				continue
			}
			f := m.cfg.creator.CreateFace(loop)
			if f == nil {
				continue
			}
			out = append(out, f)
		}
	}

	return out
}

// seedNormals collects unit plane normals through start and each
// non-collinear neighbour of either endpoint, skipping parallel duplicates.
func (m *Mesh) seedNormals(start *Edge) []vec3.T {
	var normals []vec3.T
	a, b := start.v[0], start.v[1]
	ab := vec3.Sub(&b.Pos, &a.Pos)
	abLen := ab.Length()
	if abLen == 0 {
		return nil
	}

	consider := func(pivot *Vertex, c *Vertex) {
		if c == a || c == b {
			return
		}
		pc := vec3.Sub(&c.Pos, &pivot.Pos)
		n := vec3.Cross(&pc, &ab)
		if n.Length() <= collinearEps*abLen*pc.Length() {
			return
		}
		n.Normalize()
		for i := range normals {
			if math.Abs(vec3.Dot(&normals[i], &n)) > 1-parallelEps {
				return
			}
		}
		normals = append(normals, n)
	}
	for _, c := range b.linked {
		consider(b, c)
	}
	for _, c := range a.linked {
		consider(a, c)
	}

	return normals
}

// walkLoop follows the tightest counter-clockwise turn about n starting with
// the half-edge from → start.Other(from).
func (m *Mesh) walkLoop(start *Edge, from *Vertex, n vec3.T) ([]*Edge, bool) {
	loop := []*Edge{start}
	verts := []*Vertex{from}
	seen := map[*Vertex]struct{}{from: {}}

	prev, cur, in := from, start.Other(from), start
	for {
		if cur == from {
			if len(loop) < minLoopEdges {
				return nil, false
			}
			break
		}
		if _, dup := seen[cur]; dup {
			return nil, false
		}
		if len(loop) >= m.cfg.maxLoopEdges {
			return nil, false
		}
		seen[cur] = struct{}{}
		verts = append(verts, cur)

		next := m.nextEdge(prev, cur, in, n)
		if next == nil {
			return nil, false
		}
		loop = append(loop, next)
		prev, cur, in = cur, next.Other(cur), next
	}

	normal := newellNormal(positionsOf(verts))
	if vec3.Dot(&normal, &n) <= 0 {
		return nil, false
	}

	return loop, true
}

// nextEdge picks the outgoing edge at cur with the smallest counter-clockwise
// angle about n onto the reverse incoming direction. Ties keep link order.
func (m *Mesh) nextEdge(prev, cur *Vertex, in *Edge, n vec3.T) *Edge {
	back := vec3.Sub(&prev.Pos, &cur.Pos)
	back = projectOnPlane(back, n)
	if back.Length() == 0 {
		return nil
	}

	var best *Edge
	bestAngle := math.Inf(1)
	for i, e := range cur.edges {
		if e == in {
			continue
		}
		d := vec3.Sub(&cur.linked[i].Pos, &cur.Pos)
		l := d.Length()
		if l == 0 {
			continue
		}
		unit := d.Scaled(1 / l)
		if math.Abs(vec3.Dot(&unit, &n)) > m.cfg.planarTolerance {
			continue
		}
		p := projectOnPlane(d, n)
		if p.Length() <= collinearEps*l {
			continue
		}
		if a := ccwAngle(p, back, n); a < bestAngle {
			best, bestAngle = e, a
		}
	}

	return best
}

// existingFace returns a face already bounded by exactly loop, or nil.
func existingFace(loop []*Edge) *Face {
	for _, f := range loop[0].faces {
		if f.sameEdgeSet(loop) {
			return f
		}
	}
	return nil
}

func appendUnique(fs []*Face, f *Face) []*Face {
	for _, g := range fs {
		if g == f {
			return fs
		}
	}
	return append(fs, f)
}
