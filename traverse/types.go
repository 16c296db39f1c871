// Options, sentinel errors and the walk result for package traverse.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilMesh is returned if a nil mesh pointer is passed.
	ErrNilMesh = errors.New("traverse: mesh is nil")

	// ErrStartNotFound is returned when the start element is not a mesh member.
	ErrStartNotFound = errors.New("traverse: start element not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNoPath is returned by PathTo for an element the walk never reached.
	ErrNoPath = errors.New("traverse: no path")
)

// Option configures a walk. An invalid Option is recorded and surfaced as
// ErrOptionViolation when the walk starts.
type Option func(*Options)

// Options holds parameters and callbacks for a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// OnVisit is called when an element is visited, with its ID and depth.
	// A non-nil error aborts the walk.
	OnVisit func(id uint64, depth int) error

	// FilterNeighbor skips the step curr→next when it returns false.
	FilterNeighbor func(curr, next uint64) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(uint64, int) error { return nil },
		FilterNeighbor: func(_, _ uint64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the walk beyond depth d (d > 0). d == 0 removes the
// limit; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit(fn func(id uint64, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(curr, next uint64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the outcome of a walk over elements of type T
// (*mesh.Vertex or *mesh.Face).
type Result[T comparable] struct {
	// Order lists visited elements in visit sequence.
	Order []T

	// Depth maps each visited element to its hop count from the start.
	Depth map[T]int

	// Parent maps each visited element except the start to its predecessor.
	Parent map[T]T
}

// Reached reports whether x was visited.
func (r *Result[T]) Reached(x T) bool {
	_, ok := r.Depth[x]
	return ok
}

// PathTo returns the fewest-hop path from the start to dest, both included.
func (r *Result[T]) PathTo(dest T) ([]T, error) {
	if !r.Reached(dest) {
		return nil, ErrNoPath
	}
	path := []T{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
