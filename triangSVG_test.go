package gendelaunay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSVG(t *testing.T) {
	samples := unitSquare()
	tri := &Triangulation{Tri: [][]int{{0, 1, 2}, {0, 2, 3}}}

	var buf bytes.Buffer
	require.NoError(t, tri.ExportSVG(&buf, samples, 120, 120))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 2, strings.Count(out, "<polygon"))
	assert.Equal(t, 4, strings.Count(out, "<circle"))
	// The y axis is flipped: sample (0, 0) is drawn at the bottom left.
	assert.Contains(t, out, `<circle cx="10" cy="110" r="2"`)
	assert.Contains(t, out, `<circle cx="110" cy="10" r="2"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestExportSVGErrors(t *testing.T) {
	samples, tri := twoTetrahedra()
	var buf bytes.Buffer
	assert.ErrorIs(t, tri.ExportSVG(&buf, samples, 100, 100), ErrUnsupportedDimension)

	tri = &Triangulation{Tri: [][]int{{0, 1, 2, 3}}}
	assert.ErrorIs(t, tri.ExportSVG(&buf, unitSquare(), 100, 100), ErrDimensionMismatch)
}
