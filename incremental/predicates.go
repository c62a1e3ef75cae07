package incremental

import (
	"math"
	"math/big"
	"math/bits"
)

// filterTol is the relative magnitude below which a floating point
// determinant is not trusted and the exact determinant is computed instead.
const filterTol = 1e-9

// detFloat returns the determinant of the square matrix m together with the
// Hadamard bound (product of the row norms) on its magnitude. m is modified.
func detFloat(m [][]float64) (det, bound float64) {
	bound = 1
	for _, row := range m {
		var s float64
		for _, x := range row {
			s += x * x
		}
		bound *= math.Sqrt(s)
	}
	n := len(m)
	det = 1
	for k := 0; k < n; k++ {
		piv := k
		for i := k + 1; i < n; i++ {
			if math.Abs(m[i][k]) > math.Abs(m[piv][k]) {
				piv = i
			}
		}
		if m[piv][k] == 0 {
			return 0, bound
		}
		if piv != k {
			m[k], m[piv] = m[piv], m[k]
			det = -det
		}
		det *= m[k][k]
		for i := k + 1; i < n; i++ {
			f := m[i][k] / m[k][k]
			for j := k + 1; j < n; j++ {
				m[i][j] -= f * m[k][j]
			}
		}
	}
	return det, bound
}

// filteredSign returns the sign of det if it is reliable, or 0.
func filteredSign(det, bound float64) int {
	if math.Abs(det) <= filterTol*bound {
		return 0
	}
	if det > 0 {
		return 1
	}
	return -1
}

// detSign returns the sign of the determinant of the square matrix m using
// fraction-free (Bareiss) elimination. m is modified.
func detSign(m [][]*big.Int) int {
	n := len(m)
	sign := 1
	prev := big.NewInt(1)
	var t1, t2 big.Int
	for k := 0; k < n-1; k++ {
		if m[k][k].Sign() == 0 {
			r := k + 1
			for r < n && m[r][k].Sign() == 0 {
				r++
			}
			if r == n {
				return 0
			}
			m[k], m[r] = m[r], m[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				t1.Mul(m[i][j], m[k][k])
				t2.Mul(m[i][k], m[k][j])
				t1.Sub(&t1, &t2)
				m[i][j].Quo(&t1, prev)
			}
		}
		prev = m[k][k]
	}
	return sign * m[n-1][n-1].Sign()
}

// embed maps finite coordinates onto integers by a common power of two
// scaling. The mapping is exact, so signs of determinants are preserved.
func embed(pts [][]float64) [][]*big.Int {
	type mantExp struct {
		m int64
		e int
	}
	me := make([][]mantExp, len(pts))
	minE := math.MaxInt
	for i, p := range pts {
		me[i] = make([]mantExp, len(p))
		for k, x := range p {
			if x == 0 {
				continue
			}
			frac, exp := math.Frexp(x)
			m := int64(frac * (1 << 53))
			e := exp - 53
			tz := bits.TrailingZeros64(uint64(absInt64(m)))
			m >>= tz
			e += tz
			me[i][k] = mantExp{m, e}
			if e < minE {
				minE = e
			}
		}
	}
	out := make([][]*big.Int, len(pts))
	for i, row := range me {
		out[i] = make([]*big.Int, len(row))
		for k, v := range row {
			b := big.NewInt(v.m)
			if v.m != 0 {
				b.Lsh(b, uint(v.e-minE))
			}
			out[i][k] = b
		}
	}
	return out
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// circumsphere returns the center and squared radius of the sphere through
// the points pts[v[0]]..pts[v[D]], or ok == false if they are affinely
// dependent.
func circumsphere(pts [][]float64, v []int) (c []float64, r2 float64, ok bool) {
	dim := len(v) - 1
	p0 := pts[v[0]]
	m := make([][]float64, dim)
	var scale float64
	for k := 1; k <= dim; k++ {
		row := make([]float64, dim+1)
		var n2 float64
		for j := 0; j < dim; j++ {
			d := pts[v[k]][j] - p0[j]
			row[j] = d
			n2 += d * d
		}
		row[dim] = n2 / 2
		scale = math.Max(scale, n2)
		m[k-1] = row
	}
	if scale == 0 {
		return nil, 0, false
	}

	// Gaussian elimination with partial pivoting on the augmented matrix.
	tiny := 1e-14 * math.Sqrt(scale)
	for k := 0; k < dim; k++ {
		piv := k
		for i := k + 1; i < dim; i++ {
			if math.Abs(m[i][k]) > math.Abs(m[piv][k]) {
				piv = i
			}
		}
		if math.Abs(m[piv][k]) <= tiny {
			return nil, 0, false
		}
		m[k], m[piv] = m[piv], m[k]
		for i := k + 1; i < dim; i++ {
			f := m[i][k] / m[k][k]
			for j := k; j <= dim; j++ {
				m[i][j] -= f * m[k][j]
			}
		}
	}
	x := make([]float64, dim)
	for k := dim - 1; k >= 0; k-- {
		s := m[k][dim]
		for j := k + 1; j < dim; j++ {
			s -= m[k][j] * x[j]
		}
		x[k] = s / m[k][k]
	}
	c = make([]float64, dim)
	for j := range c {
		c[j] = p0[j] + x[j]
		r2 += x[j] * x[j]
	}
	return c, r2, true
}

func dist2(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// orientExact returns the exact orientation sign of the simplex v.
func orientExact(pts [][]*big.Int, v []int) int {
	dim := len(v) - 1
	m := make([][]*big.Int, dim)
	for k := 1; k <= dim; k++ {
		row := make([]*big.Int, dim)
		for j := range row {
			row[j] = new(big.Int).Sub(pts[v[k]][j], pts[v[0]][j])
		}
		m[k-1] = row
	}
	return detSign(m)
}

// inSphereExact returns the exact sign of the determinant with rows
// (v_k - p, |v_k - p|^2).
func inSphereExact(pts [][]*big.Int, v []int, p int) int {
	dim := len(v) - 1
	m := make([][]*big.Int, len(v))
	var sq big.Int
	for k, vk := range v {
		row := make([]*big.Int, dim+1)
		n2 := new(big.Int)
		for j := 0; j < dim; j++ {
			d := new(big.Int).Sub(pts[vk][j], pts[p][j])
			row[j] = d
			n2.Add(n2, sq.Mul(d, d))
		}
		row[dim] = n2
		m[k] = row
	}
	return detSign(m)
}
