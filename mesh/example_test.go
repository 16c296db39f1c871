// SPDX-License-Identifier: MIT
package mesh_test

import (
	"fmt"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// ExampleNewFromSegments traces the six faces of a cube wireframe.
func ExampleNewFromSegments() {
	var segs []mesh.Segment
	for i := 0; i < 8; i++ {
		for bit := 0; bit < 3; bit++ {
			if j := i | 1<<bit; j != i {
				segs = append(segs, mesh.Segment{Start: corner(i), End: corner(j)})
			}
		}
	}

	m, err := mesh.NewFromSegments(segs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("V=%d E=%d F=%d valid=%v\n", m.VertexCount(), m.EdgeCount(), m.FaceCount(), m.IsValid())
	// Output: V=8 E=12 F=6 valid=true
}

func corner(i int) vec3.T {
	return vec3.T{float64(i & 1), float64(i >> 1 & 1), float64(i >> 2 & 1)}
}

// ExampleMesh_InsertPoint splits a square at its centre.
func ExampleMesh_InsertPoint() {
	m, _ := mesh.NewPolygon([]vec3.T{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}})

	v, err := m.InsertPoint(m.Face(0), vec3.T{1, 1, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("hub degree=%d faces=%d\n", v.EdgeCount(), m.FaceCount())
	// Output: hub degree=4 faces=4
}

// ExampleMesh_DivideEdge splits the shared edge of two triangles.
func ExampleMesh_DivideEdge() {
	m, _ := mesh.NewFromGrid([][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 0}},
	}, mesh.DiagonalA)

	var diag *mesh.Edge
	for _, e := range m.Edges() {
		if e.FaceCount() == 2 {
			diag = e
		}
	}
	v, err := m.DivideEdge(diag, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("mid=(%g, %g) V=%d E=%d F=%d\n", v.Pos[0], v.Pos[1], m.VertexCount(), m.EdgeCount(), m.FaceCount())
	// Output: mid=(0.5, 0.5) V=5 E=8 F=4
}

// ExampleLoadConfig maps a YAML document onto mesh options.
func ExampleLoadConfig() {
	cfg, err := mesh.LoadConfig(strings.NewReader("tolerance: 0.001\nface_dedup: geometric\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m := mesh.New(cfg.Options()...)
	fmt.Println(m.Tolerance(), cfg.FaceDedup)
	// Output: 0.001 geometric
}
