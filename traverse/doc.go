// Package traverse provides breadth-first walks over a mesh.Mesh.
//
// What
//
//   - Vertices: BFS over vertex adjacency (the linked vertices of each vertex).
//   - Faces: BFS over face adjacency (faces sharing an edge).
//   - DepthFirst: pre-order DFS over vertex adjacency.
//   - Components: groups member vertices into edge-connected components.
//
// Every walk returns a Result holding the visit Order, the Depth of each
// visited element (in hops from the start) and the Parent link of each
// non-start element, so PathTo can rebuild a fewest-hop path.
//
// Determinism
//
//	Neighbours are expanded in adjacency order (the order edges were attached),
//	which the mesh keeps stable, so visit sequences are reproducible.
//
// Concurrency
//
//	Walks read element adjacency without taking the mesh lock. Do not edit the
//	mesh while a walk is running.
//
// Complexity (V = |Vertices|, E = |Edges|, F = |Faces|)
//
//   - Vertices:   O(V + E) time, O(V) memory.
//   - Faces:      O(F · L · k) for loop length L and edge fan-out k.
//   - Components: O(V + E).
//
// Usage
//
//	res, err := traverse.Vertices(m, start,
//	    traverse.WithContext(ctx),
//	    traverse.WithMaxDepth(2),
//	    traverse.WithOnVisit(func(id uint64, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNilMesh          if the mesh pointer is nil.
//   - ErrStartNotFound    if the start element is not a member of the mesh.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped OnVisit errors and context errors.
package traverse
