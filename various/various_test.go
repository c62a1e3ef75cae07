package various

import (
	"bytes"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	ints := [][]int{{0, 1, 2}, {}, {-1, 7}}
	floats := [][]float64{{0.5, -2, math.MaxFloat64}, {}}
	require.NoError(t, WriteIntTable(&buf, ints))
	require.NoError(t, WriteIntTable(&buf, nil))
	require.NoError(t, WriteFloatTable(&buf, floats))

	gotInts, err := ReadIntTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, ints, gotInts)
	gotNil, err := ReadIntTable(&buf)
	require.NoError(t, err)
	assert.Nil(t, gotNil)
	gotFloats, err := ReadFloatTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, floats, gotFloats)
	assert.Zero(t, buf.Len())
}

func TestReadTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIntTable(&buf, [][]int{{1, 2, 3}}))
	data := buf.Bytes()
	_, err := ReadIntTable(bytes.NewReader(data[:len(data)-4]))
	assert.Error(t, err)

	buf.Reset()
	require.NoError(t, WriteFloatSlice(&buf, []float64{1}))
	data = buf.Bytes()
	data[7] = 0x80 // negative length
	_, err = ReadFloatSlice(bytes.NewReader(data))
	assert.ErrorContains(t, err, "invalid slice length")
}

func TestLift(t *testing.T) {
	assert.Equal(t, r3.Vector{X: 3, Y: -4, Z: 25}, Lift([2]float64{3, -4}))
	n := FaceNormal(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	assert.Equal(t, r3.Vector{Z: 1}, n)
}

func TestLatLonToCartesian(t *testing.T) {
	assert.InDeltaSlice(t, []float64{1, 0, 0}, LatLonToCartesian(0, 0), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 1, 0}, LatLonToCartesian(0, 90), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 1}, LatLonToCartesian(90, 0), 1e-12)
	assert.InDelta(t, math.Pi, DegToRad(RadToDeg(math.Pi)), 1e-15)
}
