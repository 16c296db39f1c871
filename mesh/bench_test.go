// SPDX-License-Identifier: MIT
package mesh_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/mesh"
)

func BenchmarkNewFromSegments_SquareGrid(b *testing.B) {
	segs := squareGridSegments(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mesh.NewFromSegments(segs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewFromGrid(b *testing.B) {
	pts := gridPoints(32, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mesh.NewFromGrid(pts, mesh.DiagonalA); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTriangulateAtCenter(b *testing.B) {
	base, err := mesh.NewFromGrid(gridPoints(16, 16), mesh.DiagonalB)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := base.Dup()
		b.StartTimer()
		m.TriangulateAtCenter()
	}
}

func BenchmarkDup(b *testing.B) {
	m, err := mesh.NewFromGrid(gridPoints(32, 32), mesh.DiagonalA)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Dup()
	}
}
