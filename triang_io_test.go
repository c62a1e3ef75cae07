package gendelaunay

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	samples := uniform(11, 2, 50, 100)
	tri, err := Triangulate(samples, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, samples))
	require.NoError(t, tri.WriteBinary(&buf))

	gotSamples, err := ReadSamples(&buf)
	require.NoError(t, err)
	got, err := ReadTriangulation(&buf)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())

	if diff := cmp.Diff(samples, gotSamples); diff != "" {
		t.Errorf("samples differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tri, got); diff != "" {
		t.Errorf("triangulation differs (-want +got):\n%s", diff)
	}
	assert.True(t, got.Test(gotSamples))
}

func TestBinaryAbsentArrays(t *testing.T) {
	tri := &Triangulation{Tri: [][]int{{0, 1, 2, 3, 4}}}
	var buf bytes.Buffer
	require.NoError(t, tri.WriteBinary(&buf))
	got, err := ReadTriangulation(&buf)
	require.NoError(t, err)
	assert.Equal(t, tri.Tri, got.Tri)
	assert.Nil(t, got.Vertices)
	assert.Nil(t, got.Walk)
	assert.Nil(t, got.Edges)
}

func TestReadTriangulationTruncated(t *testing.T) {
	samples := unitSquare()
	tri, err := NewCustom(samples, [][]int{{0, 1, 2}, {0, 2, 3}}, nil, nil, nil, 0)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tri.WriteBinary(&buf))

	data := buf.Bytes()
	_, err = ReadTriangulation(bytes.NewReader(data[:len(data)-4]))
	assert.Error(t, err)
}
