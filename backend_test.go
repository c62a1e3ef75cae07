package gendelaunay

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flokey82/gendelaunay/pointgen"
)

func runBackend(t *testing.T, kind Kind, samples [][]float64) *Triangulation {
	t.Helper()
	b, err := NewBackend(kind, nil)
	require.NoError(t, err)
	require.Equal(t, kind, b.Kind())
	tri, err := b.Triangulate(samples)
	require.NoError(t, err)
	require.NoError(t, tri.Finish(samples))
	return tri
}

// requireWalkDerivable checks that the adjacency produced by a back-end
// matches the one derived from Tri.
func requireWalkDerivable(t *testing.T, tri *Triangulation, samples [][]float64) {
	t.Helper()
	derived := &Triangulation{Tri: tri.Tri}
	require.NoError(t, derived.Finish(samples))
	require.Equal(t, derived.Walk, tri.Walk)
}

func TestBackends2D(t *testing.T) {
	samples := uniform(42, 2, 300, 1e6)
	for _, kind := range []Kind{KindFastApprox, KindClarksonExact, KindWatsonExact, KindGeneralDimExact} {
		t.Run(kind.String(), func(t *testing.T) {
			orig := CopySamples(samples)
			tri := runBackend(t, kind, samples)
			assert.Equal(t, orig, samples, "samples modified")
			assert.NoError(t, tri.Validate(samples))
			requireEdgesConsistent(t, tri)
			requireWalkDerivable(t, tri, samples)
			if kind != KindClarksonExact {
				// Clarkson triangulates the rounded coordinates.
				assertDelaunay2(t, samples, tri)
			}
		})
	}
}

func TestBackendsAgree2D(t *testing.T) {
	// Integer coordinates in general position have a unique Delaunay
	// triangulation, which every back-end must find.
	samples := uniform(9, 2, 60, 1e4)
	for i := range samples {
		for j := range samples[i] {
			samples[i][j] = float64(int(samples[i][j]))
		}
	}
	want := simplexSet(runBackend(t, KindGeneralDimExact, samples))
	for _, kind := range []Kind{KindFastApprox, KindClarksonExact, KindWatsonExact} {
		assert.Equal(t, want, simplexSet(runBackend(t, kind, samples)), kind.String())
	}
}

func TestBackends3D(t *testing.T) {
	samples := uniform(5, 3, 80, 1e6)
	for _, kind := range []Kind{KindClarksonExact, KindWatsonExact, KindGeneralDimExact} {
		t.Run(kind.String(), func(t *testing.T) {
			tri := runBackend(t, kind, samples)
			assert.Equal(t, 3, tri.SimplexDim())
			assert.NoError(t, tri.Validate(samples))
			requireEdgesConsistent(t, tri)
			requireWalkDerivable(t, tri, samples)
			assertDelaunay3(t, samples, tri)
		})
	}
}

func TestBackendsHigherDimensions(t *testing.T) {
	for _, dim := range []int{4, 5} {
		samples := uniform(int64(dim), dim, 25, 100)
		for _, kind := range []Kind{KindClarksonExact, KindGeneralDimExact} {
			b, err := NewBackend(kind, nil)
			require.NoError(t, err)
			samp := samples
			if kind == KindClarksonExact {
				samp = Scale(samples, 1000, true)
			}
			tri, err := b.Triangulate(samp)
			require.NoError(t, err, "%v in %d-D", kind, dim)
			assert.Nil(t, tri.Walk)
			require.NoError(t, tri.Finish(samp))
			assert.Equal(t, dim, tri.SimplexDim())
			assert.NoError(t, tri.Validate(samp))
		}
	}
}

func TestBackendsDegenerate(t *testing.T) {
	grid := pointgen.Grid(12, 12, 1)

	t.Run("general handles co-circular points", func(t *testing.T) {
		tri := runBackend(t, KindGeneralDimExact, grid)
		assert.Len(t, tri.Tri, 2*11*11)
		assert.NoError(t, tri.Validate(grid))
		assertDelaunay2(t, grid, tri)
	})

	t.Run("factory always yields a valid triangulation", func(t *testing.T) {
		for _, exact := range []bool{true, false} {
			tri, err := Triangulate(grid, exact)
			require.NoError(t, err)
			assert.NoError(t, tri.Validate(grid))
		}
	})

	t.Run("points on a sphere", func(t *testing.T) {
		sphere := pointgen.FibonacciSphere(3, 60, 0)
		tri, err := Triangulate(sphere, true)
		require.NoError(t, err)
		assert.NoError(t, tri.Validate(sphere))
	})

	t.Run("clarkson rejects points rounding together", func(t *testing.T) {
		b, err := NewBackend(KindClarksonExact, nil)
		require.NoError(t, err)
		_, err = b.Triangulate([][]float64{{0, 10, 0, 0.2}, {0, 0, 10, 0.1}})
		assert.ErrorIs(t, err, ErrDegenerate)
	})

	t.Run("watson is limited to 2-D and 3-D", func(t *testing.T) {
		b, err := NewBackend(KindWatsonExact, nil)
		require.NoError(t, err)
		_, err = b.Triangulate(zeroSamples(4, 10))
		assert.ErrorIs(t, err, ErrUnsupportedDimension)
	})

	t.Run("fast is limited to 2-D", func(t *testing.T) {
		b, err := NewBackend(KindFastApprox, nil)
		require.NoError(t, err)
		_, err = b.Triangulate(zeroSamples(3, 10))
		assert.ErrorIs(t, err, ErrUnsupportedDimension)
	})
}

func TestHalfedgeMesh(t *testing.T) {
	// Two triangles sharing the side 1-2.
	hm := newHalfedgeMesh([]int{0, 1, 2, 2, 1, 3}, []int{-1, 3, -1, 1, -1, -1})
	tri := hm.triangulation()
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 1, 3}}, tri.Tri)
	assert.Equal(t, [][]int{{-1, 1, -1}, {0, -1, -1}}, tri.Walk)
}

// simplexSet returns the simplices of tri as a set of sorted vertex keys.
func simplexSet(tri *Triangulation) map[string]bool {
	set := make(map[string]bool, len(tri.Tri))
	for _, s := range tri.Tri {
		set[simplexKey(s)] = true
	}
	return set
}

// circleSamples returns n distinct integer points, at least half of them
// close to a circle of radius 1000 and the rest inside it.
func circleSamples(rnd *rand.Rand, n int) [][]float64 {
	seen := make(map[[2]float64]bool)
	samples := [][]float64{nil, nil}
	for len(samples[0]) < n {
		var p [2]float64
		if len(samples[0]) <= n/2 {
			a := rnd.Float64() * 2 * math.Pi
			p = [2]float64{math.Round(1000 * math.Cos(a)), math.Round(1000 * math.Sin(a))}
		} else {
			p = [2]float64{float64(rnd.Intn(1401) - 700), float64(rnd.Intn(1401) - 700)}
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		samples[0] = append(samples[0], p[0])
		samples[1] = append(samples[1], p[1])
	}
	return samples
}

func TestBackendsCoverHull(t *testing.T) {
	rnd := rand.New(rand.NewSource(170))
	for iter := 0; iter < 200; iter++ {
		samples := circleSamples(rnd, 5+rnd.Intn(30))
		want := 2*NumSamples(samples) - hullBoundaryPoints(samples) - 2

		for _, kind := range []Kind{KindFastApprox, KindClarksonExact, KindWatsonExact, KindGeneralDimExact} {
			b, err := NewBackend(kind, nil)
			require.NoError(t, err)
			tri, err := b.Triangulate(samples)
			if err != nil && kind != KindGeneralDimExact {
				// The factory falls back on these.
				require.ErrorIs(t, err, ErrDegenerate, "iteration %d %v", iter, kind)
				continue
			}
			require.NoError(t, err, "iteration %d %v", iter, kind)
			require.NoError(t, tri.Finish(samples))
			requireHullCovered(t, samples, tri)
			require.Len(t, tri.Tri, want, "iteration %d %v", iter, kind)
		}

		for _, exact := range []bool{true, false} {
			tri, err := Triangulate(samples, exact)
			require.NoError(t, err, "iteration %d", iter)
			requireHullCovered(t, samples, tri)
			require.Len(t, tri.Tri, want, "iteration %d", iter)
		}
	}
}
