// Package pointgen generates sample point sets for triangulation, in the
// samples layout of one coordinate array per dimension.
package pointgen

import (
	"math"
	"math/rand"

	"github.com/Flokey82/gendelaunay/various"
)

// newSamples allocates dim coordinate arrays of n values.
func newSamples(dim, n int) [][]float64 {
	samples := make([][]float64, dim)
	for i := range samples {
		samples[i] = make([]float64, n)
	}
	return samples
}

// Uniform returns n points drawn uniformly from the cube [0, size)^dim.
func Uniform(rnd *rand.Rand, dim, n int, size float64) [][]float64 {
	samples := newSamples(dim, n)
	for j := 0; j < n; j++ {
		for i := range samples {
			samples[i][j] = rnd.Float64() * size
		}
	}
	return samples
}

// Grid returns the nx * ny points of a square lattice with the given
// spacing. Every lattice cell has four co-circular corners, which makes it
// the classic degenerate input.
func Grid(nx, ny int, spacing float64) [][]float64 {
	samples := newSamples(2, nx*ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			samples[0][y*nx+x] = float64(x) * spacing
			samples[1][y*nx+x] = float64(y) * spacing
		}
	}
	return samples
}

// Clustered returns n points in [0, size)^dim whose density follows
// opensimplex noise, so the points form clusters and sparse regions. dim
// must be 2 or 3.
func Clustered(seed int64, dim, n int, size float64) [][]float64 {
	rnd := rand.New(rand.NewSource(seed))
	noise := NewNoise(4, 0.5, seed)
	samples := newSamples(dim, n)
	p := make([]float64, dim)
	for j := 0; j < n; {
		for i := range p {
			p[i] = rnd.Float64()
		}
		// Reject points with a probability given by the noise, raised to
		// a power to sharpen the clusters.
		if rnd.Float64() > math.Pow(noise.Eval(scaled(p, 4)), 3) {
			continue
		}
		for i := range samples {
			samples[i][j] = p[i] * size
		}
		j++
	}
	return samples
}

func scaled(p []float64, f float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = v * f
	}
	return out
}

// FibonacciSphere returns n points evenly distributed on the unit sphere,
// optionally displaced by jitter. The result has three coordinate arrays.
func FibonacciSphere(seed int64, n int, jitter float64) [][]float64 {
	rnd := rand.New(rand.NewSource(seed))

	// Second algorithm from http://web.archive.org/web/20120421191837/http://www.cgafaq.info/wiki/Evenly_distributed_points_on_sphere
	s := 3.6 / math.Sqrt(float64(n))
	dlong := math.Pi * (3 - math.Sqrt(5)) // ~2.39996323
	dz := 2.0 / float64(n)

	samples := newSamples(3, n)
	for k := 0; k < n; k++ {
		// Calculate latitude as z value from -1 to 1.
		z := 1 - (dz / 2) - float64(k)*dz

		// Calculate longitude in rad.
		long := float64(k) * dlong

		// Calculate the radius at the given z.
		r := math.Sqrt(1 - z*z)

		latDeg := various.RadToDeg(math.Asin(z))
		lonDeg := various.RadToDeg(long)
		if jitter > 0 {
			latDeg += jitter * (rnd.Float64() - rnd.Float64()) * (latDeg - various.RadToDeg(math.Asin(math.Max(-1, z-dz*2*math.Pi*r/s))))
			lonDeg += jitter * (rnd.Float64() - rnd.Float64()) * various.RadToDeg(s/r)
		}
		xyz := various.LatLonToCartesian(latDeg, math.Mod(lonDeg, 360.0))
		for i := range samples {
			samples[i][k] = xyz[i]
		}
	}
	return samples
}
