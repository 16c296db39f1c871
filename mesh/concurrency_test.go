// SPDX-License-Identifier: MIT
package mesh_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Disjoint triangles from concurrent writers while readers poll counts.
func TestConcurrent_AddSegmentsAndReads(t *testing.T) {
	m := mesh.New()

	var wg sync.WaitGroup
	errs := make(chan error, NWriters)
	stop := make(chan struct{})

	for i := 0; i < NWriters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- m.AddSegments(triangleSegments(10 * float64(i)))
		}(i)
	}

	var rg sync.WaitGroup
	bad := make(chan string, NReaders)
	for r := 0; r < NReaders; r++ {
		rg.Add(1)
		go func() {
			defer rg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				for _, f := range m.Faces() {
					if f.Len() != 3 {
						bad <- f.String()
						return
					}
				}
				_ = m.VertexCount()
				_, _, _ = m.BoundingBox()
			}
		}()
	}

	wg.Wait()
	close(stop)
	rg.Wait()
	close(errs)
	close(bad)

	for err := range errs {
		require.NoError(t, err)
	}
	for s := range bad {
		t.Errorf("reader saw malformed face %s", s)
	}
	assert.Equal(t, [3]int{3 * NWriters, 3 * NWriters, NWriters}, counts(m))
	requireSound(t, m)
}

// Meshes sharing a lock domain may be edited from several goroutines.
func TestConcurrent_SharedLockDomain(t *testing.T) {
	var mu sync.RWMutex
	a := mesh.New(mesh.WithLock(&mu))
	b := mesh.New(mesh.WithLock(&mu))

	var wg sync.WaitGroup
	errs := make(chan error, 2*NRounds)
	for i := 0; i < NRounds; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			errs <- a.AddSegments(triangleSegments(10 * float64(i)))
		}(i)
		go func(i int) {
			defer wg.Done()
			p := 10 * float64(i)
			errs <- b.AddPolygons([][]vec3.T{{pt(p, 0, 0), pt(p+1, 0, 0), pt(p+1, 1, 0), pt(p, 1, 0)}})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, NRounds, a.FaceCount())
	assert.Equal(t, NRounds, b.FaceCount())
	requireSound(t, a)
	requireSound(t, b)
}

// Edits on independent meshes never interfere.
func TestConcurrent_IndependentEdits(t *testing.T) {
	meshes := make([]*mesh.Mesh, NWriters)
	for i := range meshes {
		m, err := mesh.NewFromGrid(gridPoints(4, 4), mesh.DiagonalA)
		require.NoError(t, err)
		meshes[i] = m
	}

	var wg sync.WaitGroup
	results := make(chan int, NWriters)
	for _, m := range meshes {
		wg.Add(1)
		go func(m *mesh.Mesh) {
			defer wg.Done()
			results <- m.TriangulateAtCenter()
		}(m)
	}
	wg.Wait()
	close(results)

	for n := range results {
		assert.Equal(t, 18, n)
	}
	for _, m := range meshes {
		assert.Equal(t, 54, m.FaceCount())
	}
}
