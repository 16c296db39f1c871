// Depth-first walk over vertex adjacency.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// dfsWalker encapsulates state during a depth-first walk.
type dfsWalker struct {
	opts Options
	res  *Result[*mesh.Vertex]
}

// DepthFirst walks vertex adjacency depth-first from start. Order is the
// pre-order discovery sequence; Depth is the tree depth (not the hop
// distance); Parent links form the DFS tree.
func DepthFirst(m *mesh.Mesh, start *mesh.Vertex, opts ...Option) (*Result[*mesh.Vertex], error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if start == nil || m.IndexOfVertex(start) < 0 {
		return nil, ErrStartNotFound
	}

	n := m.VertexCount()
	w := &dfsWalker{opts: o, res: &Result[*mesh.Vertex]{
		Order:  make([]*mesh.Vertex, 0, n),
		Depth:  make(map[*mesh.Vertex]int, n),
		Parent: make(map[*mesh.Vertex]*mesh.Vertex, n),
	}}

	return w.res, w.traverse(start, 0)
}

// traverse visits v at depth, then recurses into unvisited neighbours in
// adjacency order.
func (w *dfsWalker) traverse(v *mesh.Vertex, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v.ID, depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %d: %w", v.ID, err)
	}
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	for _, nb := range v.LinkedVertices() {
		if _, seen := w.res.Depth[nb]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(v.ID, nb.ID) {
			continue
		}
		w.res.Parent[nb] = v
		if err := w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	return nil
}
