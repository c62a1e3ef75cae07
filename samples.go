package gendelaunay

import (
	"math/rand"

	"github.com/pkg/errors"
)

// NumSamples returns the number of usable points in samples, which is the
// length of the shortest coordinate array.
func NumSamples(samples [][]float64) int {
	if len(samples) == 0 {
		return 0
	}
	nrs := len(samples[0])
	for _, s := range samples[1:] {
		if len(s) < nrs {
			nrs = len(s)
		}
	}
	return nrs
}

// checkSamples returns the dimension and point count of samples.
func checkSamples(samples [][]float64) (dim, nrs int, err error) {
	dim = len(samples)
	if dim < 2 {
		return dim, 0, errors.Wrapf(ErrInvalidDimension, "got %d coordinate arrays", dim)
	}
	return dim, NumSamples(samples), nil
}

// CopySamples returns a deep copy of samples.
func CopySamples(samples [][]float64) [][]float64 {
	if samples == nil {
		return nil
	}
	samp := make([][]float64, len(samples))
	for i, s := range samples {
		samp[i] = append(make([]float64, 0, len(s)), s...)
	}
	return samp
}

// Scale multiplies every coordinate by mult. If copy is set, samples is left
// untouched and a scaled copy is returned; otherwise samples is modified in
// place and returned.
func Scale(samples [][]float64, mult float64, copy bool) [][]float64 {
	nrs := NumSamples(samples)
	samp := samples
	if copy {
		samp = CopySamples(samples)
	}
	for i := range samp {
		for j := 0; j < nrs; j++ {
			samp[i][j] *= mult
		}
	}
	return samp
}

// Perturb moves every coordinate by a random amount in [-epsilon, epsilon)
// to break degeneracies such as co-linear points. See Scale for the meaning
// of copy.
func Perturb(samples [][]float64, epsilon float64, copy bool) [][]float64 {
	return perturb(rand.Float64, samples, epsilon, copy)
}

// PerturbRand is like Perturb but draws from rnd, for reproducible results.
func PerturbRand(rnd *rand.Rand, samples [][]float64, epsilon float64, copy bool) [][]float64 {
	return perturb(rnd.Float64, samples, epsilon, copy)
}

func perturb(float64Fn func() float64, samples [][]float64, epsilon float64, copy bool) [][]float64 {
	nrs := NumSamples(samples)
	samp := samples
	if copy {
		samp = CopySamples(samples)
	}
	for i := range samp {
		for j := 0; j < nrs; j++ {
			samp[i][j] += 2 * epsilon * (float64Fn() - 0.5)
		}
	}
	return samp
}

// samplePoints transposes samples into one coordinate row per point.
func samplePoints(samples [][]float64) [][]float64 {
	nrs := NumSamples(samples)
	pts := make([][]float64, nrs)
	for j := range pts {
		p := make([]float64, len(samples))
		for i := range samples {
			p[i] = samples[i][j]
		}
		pts[j] = p
	}
	return pts
}
