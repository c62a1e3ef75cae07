package pointgen

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Noise is fractal opensimplex noise with a given number of octaves and
// persistence, normalized to [0, 1].
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// NewNoise returns a new Noise.
func NewNoise(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
	}
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}
	return n
}

// Eval returns the noise value at p. Only the first three coordinates of p
// are used.
func (n *Noise) Eval(p []float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		f := float64(int(1) << octave)
		var v float64
		if len(p) == 2 {
			v = n.OS.Eval2(p[0]*f, p[1]*f)
		} else {
			v = n.OS.Eval3(p[0]*f, p[1]*f, p[2]*f)
		}
		sum += n.Amplitudes[octave] * v
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}
