// Breadth-first walkers over vertex and face adjacency.
package traverse

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvmesh/mesh"
)

// queueItem pairs an element with its depth.
type queueItem[T comparable] struct {
	x     T
	depth int
}

// walker encapsulates mutable BFS state for one walk.
type walker[T comparable] struct {
	opts      Options
	ctx       context.Context
	id        func(T) uint64
	neighbors func(T) []T
	queue     []queueItem[T]
	res       *Result[T]
}

// Vertices walks vertex adjacency breadth-first from start.
func Vertices(m *mesh.Mesh, start *mesh.Vertex, opts ...Option) (*Result[*mesh.Vertex], error) {
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

	w := newWalker(o, m.VertexCount(),
		func(v *mesh.Vertex) uint64 { return v.ID },
		func(v *mesh.Vertex) []*mesh.Vertex { return v.LinkedVertices() },
	)

	return w.res, w.run(start)
}

// Faces walks face adjacency breadth-first from start. Two faces are adjacent
// when they share an edge; neighbours are expanded loop edge by loop edge.
func Faces(m *mesh.Mesh, start *mesh.Face, opts ...Option) (*Result[*mesh.Face], error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if start == nil || m.IndexOfFace(start) < 0 {
		return nil, ErrStartNotFound
	}

	w := newWalker(o, m.FaceCount(),
		func(f *mesh.Face) uint64 { return f.ID },
		faceNeighbors,
	)

	return w.res, w.run(start)
}

// Components groups the member vertices of m into edge-connected components,
// each in BFS order, components ordered by their first vertex's index.
func Components(m *mesh.Mesh) ([][]*mesh.Vertex, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	seen := make(map[*mesh.Vertex]bool, m.VertexCount())
	var out [][]*mesh.Vertex
	for _, v := range m.Vertices() {
		if seen[v] {
			continue
		}
		w := newWalker(DefaultOptions(), 0,
			func(v *mesh.Vertex) uint64 { return v.ID },
			func(v *mesh.Vertex) []*mesh.Vertex { return v.LinkedVertices() },
		)
		if err := w.run(v); err != nil {
			return nil, err
		}
		for _, x := range w.res.Order {
			seen[x] = true
		}
		out = append(out, w.res.Order)
	}

	return out, nil
}

func faceNeighbors(f *mesh.Face) []*mesh.Face {
	var out []*mesh.Face
	for _, e := range f.Edges() {
		for _, g := range e.Faces() {
			if g != f && !lo.Contains(out, g) {
				out = append(out, g)
			}
		}
	}
	return out
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func newWalker[T comparable](o Options, hint int, id func(T) uint64, nb func(T) []T) *walker[T] {
	return &walker[T]{
		opts:      o,
		ctx:       o.Ctx,
		id:        id,
		neighbors: nb,
		queue:     make([]queueItem[T], 0, hint),
		res: &Result[T]{
			Order:  make([]T, 0, hint),
			Depth:  make(map[T]int, hint),
			Parent: make(map[T]T, hint),
		},
	}
}

// run seeds the queue with start and processes it until empty, error or
// cancellation.
func (w *walker[T]) run(start T) error {
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[T]{x: start})

	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.x)
		if err := w.opts.OnVisit(w.id(item.x), item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %d: %w", w.id(item.x), err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.neighbors(item.x) {
			if _, seen := w.res.Depth[nb]; seen {
				continue
			}
			if !w.opts.FilterNeighbor(w.id(item.x), w.id(nb)) {
				continue
			}
			w.res.Depth[nb] = next
			w.res.Parent[nb] = item.x
			w.queue = append(w.queue, queueItem[T]{x: nb, depth: next})
		}
	}

	return nil
}
