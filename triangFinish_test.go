package gendelaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinishUnitSquare(t *testing.T) {
	samples := unitSquare()
	tri := &Triangulation{Tri: [][]int{{0, 1, 2}, {0, 2, 3}}}
	require.NoError(t, tri.Finish(samples))

	assert.Equal(t, [][]int{{0, 1}, {0}, {0, 1}, {1}}, tri.Vertices)
	assert.Equal(t, [][]int{{-1, -1, 1}, {0, -1, -1}}, tri.Walk)
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3, 4}}, tri.Edges)
	assert.Equal(t, 5, tri.NumEdges)

	// Each triangle has two hull edges and one edge shared with the other.
	for s, walk := range tri.Walk {
		var hull, shared int
		for _, nb := range walk {
			if nb == -1 {
				hull++
			} else {
				assert.Equal(t, 1-s, nb)
				shared++
			}
		}
		assert.Equal(t, 2, hull)
		assert.Equal(t, 1, shared)
	}
	requireEdgesConsistent(t, tri)
	assert.True(t, tri.Test(samples))
}

func TestFinishTetrahedra(t *testing.T) {
	samples, tri := twoTetrahedra()
	require.NoError(t, tri.Finish(samples))

	assert.Equal(t, [][]int{{1, -1, -1, -1}, {0, -1, -1, -1}}, tri.Walk)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5}, {0, 1, 6, 3, 7, 8}}, tri.Edges)
	assert.Equal(t, 9, tri.NumEdges)
	requireEdgesConsistent(t, tri)
	requireVerticesInverse(t, tri, 5)
	assert.True(t, tri.Test(samples))
}

func TestFinishKeepsPresentArrays(t *testing.T) {
	samples := unitSquare()
	walk := [][]int{{-1, -1, 1}, {0, -1, -1}}
	tri := &Triangulation{Tri: [][]int{{0, 1, 2}, {0, 2, 3}}, Walk: walk}
	require.NoError(t, tri.Finish(samples))
	assert.Same(t, &walk[0][0], &tri.Walk[0][0])
	assert.Equal(t, 5, tri.NumEdges)
}

func TestFinishHigherDimensions(t *testing.T) {
	samples := [][]float64{
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
	}
	tri := &Triangulation{Tri: [][]int{{0, 1, 2, 3, 4}}}
	require.NoError(t, tri.Finish(samples))
	assert.Equal(t, [][]int{{0}, {0}, {0}, {0}, {0}}, tri.Vertices)
	assert.Nil(t, tri.Walk)
	assert.Nil(t, tri.Edges)
	assert.True(t, tri.Test(samples))

	assert.ErrorIs(t, tri.BuildWalk(), ErrUnsupportedDimension)
	assert.ErrorIs(t, tri.BuildEdges(), ErrUnsupportedDimension)
}

func TestFinishErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, New().Finish(unitSquare()), ErrDegenerate)
	})

	t.Run("point out of range", func(t *testing.T) {
		tri := &Triangulation{Tri: [][]int{{0, 1, 4}}}
		assert.ErrorIs(t, tri.Finish(unitSquare()), ErrCorrupt)
	})

	t.Run("walk without back-reference", func(t *testing.T) {
		tri := &Triangulation{
			Tri:  [][]int{{0, 1, 2}, {0, 2, 3}},
			Walk: [][]int{{-1, -1, 1}, {-1, -1, -1}},
		}
		err := tri.Finish(unitSquare())
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("walk requires vertices", func(t *testing.T) {
		tri := &Triangulation{Tri: [][]int{{0, 1, 2}}}
		assert.ErrorIs(t, tri.BuildWalk(), ErrNotFinished)
	})

	t.Run("2-D edges require walk", func(t *testing.T) {
		tri := &Triangulation{Tri: [][]int{{0, 1, 2}}}
		assert.ErrorIs(t, tri.BuildEdges(), ErrNotFinished)
	})
}

func TestFinishRandom(t *testing.T) {
	for _, dim := range []int{2, 3} {
		samples := uniform(int64(dim), dim, 80, 100)
		tri, err := NewFactory(nil, nil, nil).Run(KindGeneralDimExact, samples)
		require.NoError(t, err)

		// Recompute everything from Tri alone.
		derived := &Triangulation{Tri: tri.Tri}
		require.NoError(t, derived.Finish(samples))
		requireVerticesInverse(t, derived, 80)
		requireEdgesConsistent(t, derived)
		assert.Equal(t, tri.Walk, derived.Walk, "dimension %d", dim)
		assert.NoError(t, derived.Validate(samples))
	}
}
