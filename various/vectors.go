package various

import "github.com/golang/geo/r3"

// Dot2 returns the dot product of two vectors.
func Dot2(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross2 returns the cross product of two vectors.
func Cross2(a, b [2]float64) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Sub2 returns the difference of two vectors.
func Sub2(a, b [2]float64) [2]float64 {
	return [2]float64{
		a[0] - b[0],
		a[1] - b[1],
	}
}

// Lift returns the 2-D point p lifted onto the paraboloid z = x^2 + y^2.
func Lift(p [2]float64) r3.Vector {
	return r3.Vector{X: p[0], Y: p[1], Z: p[0]*p[0] + p[1]*p[1]}
}

// FaceNormal returns the (unnormalized) normal of the triangle abc, pointing
// towards the side from which abc appears counter-clockwise.
func FaceNormal(a, b, c r3.Vector) r3.Vector {
	return b.Sub(a).Cross(c.Sub(a))
}
