// SPDX-License-Identifier: MIT
package mesh_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/mesh"
)

// strayCreator attaches every edge to a copy of its second endpoint that the
// mesh never learns about.
type strayCreator struct {
	mesh.DefaultCreator
}

func (strayCreator) CreateEdge(v1, v2 *mesh.Vertex) *mesh.Edge {
	return mesh.NewEdge(v1, mesh.NewVertex(v2.Pos))
}

func TestValidate_SoundMeshes(t *testing.T) {
	assert.NoError(t, mesh.New().Validate())

	m, err := mesh.NewFromSegments(cubeSegments())
	require.NoError(t, err)
	assert.True(t, m.IsValid())
}

func TestValidate_ReportsForeignEndpoint(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	m, err := mesh.NewFromSegments(
		[]mesh.Segment{seg(pt(0, 0, 0), pt(1, 0, 0))},
		mesh.WithCreator(strayCreator{}), mesh.WithLogger(logger),
	)
	require.NoError(t, err)

	err = m.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrInvalidMesh)
	assert.False(t, m.IsValid())
	assert.Contains(t, buf.String(), "mesh consistency violation")

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	for _, e := range joined.Unwrap() {
		assert.ErrorIs(t, e, mesh.ErrInvalidMesh)
	}
}
