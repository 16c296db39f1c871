package builder_test

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/mesh"
)

// ExampleBuild places an icosahedron and a hexagon side by side in one mesh.
func ExampleBuild() {
	m, err := builder.Build(
		[]mesh.Option{mesh.WithTolerance(1e-9)},
		[]builder.Option{builder.WithScale(2)},
		builder.PlatonicSolid(builder.Icosahedron),
		builder.Polygon([]vec3.T{{10, 0, 0}, {11, 0, 0}, {11.5, 1, 0}, {11, 2, 0}, {10, 2, 0}, {9.5, 1, 0}}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("V=%d E=%d F=%d\n", m.VertexCount(), m.EdgeCount(), m.FaceCount())
	// Output: V=18 E=36 F=21
}

// ExampleWheel shows the faces traced for a wheel with a pentagonal rim.
func ExampleWheel() {
	m, _ := builder.Build(nil, nil, builder.Wheel(6))
	sizes := map[int]int{}
	for _, f := range m.Faces() {
		sizes[f.Len()]++
	}
	fmt.Println(m.VertexCount(), m.EdgeCount(), sizes)
	// Output: 6 10 map[3:5]
}
