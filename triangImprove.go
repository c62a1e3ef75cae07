package gendelaunay

import (
	"math"

	"github.com/pkg/errors"

	"github.com/Flokey82/gendelaunay/various"
)

// Improve uses edge flipping to bring a 2-D triangulation closer to the true
// Delaunay triangulation. pass is the maximum number of sweeps over all
// edges; the algorithm stops early once a sweep flips no edge. Improve
// returns the total number of flipped edges.
//
// Walk, Edges and Vertices must be present (see Finish). Tri, Walk, Edges
// and Vertices are updated in place; Improve must not be called
// concurrently on the same triangulation.
func (t *Triangulation) Improve(samples [][]float64, pass int) (int, error) {
	dim := len(samples)
	if len(t.Tri) == 0 {
		return 0, nil
	}
	if len(t.Tri[0]) != dim+1 {
		return 0, errors.Wrapf(ErrDimensionMismatch, "improve: %d coordinate arrays, simplices of %d", dim, len(t.Tri[0]))
	}
	// Only 2-D triangulations are supported.
	if dim != 2 {
		return 0, errors.Wrapf(ErrUnsupportedDimension, "improve: dimension %d, must be 2", dim)
	}
	if t.Walk == nil || t.Edges == nil || t.Vertices == nil {
		return 0, errors.Wrap(ErrNotFinished, "improve")
	}
	if err := t.checkTables(NumSamples(samples)); err != nil {
		return 0, errors.Wrap(err, "improve")
	}
	samp0 := samples[0]
	samp1 := samples[1]
	point := func(i int) [2]float64 {
		return [2]float64{samp0[i], samp1[i]}
	}

	var flips int
	for p := 0; p < pass; p++ {
		var flipped bool

		// unchecked keeps track of which edges still need to be checked.
		unchecked := make([]bool, t.NumEdges)
		for i := range unchecked {
			unchecked[i] = true
		}

		// The third edge of each triangle is reached as edge 0 or 1 of its
		// neighbor.
		for tr := range t.Tri {
			trit := t.Tri[tr]
			walkt := t.Walk[tr]
			edgest := t.Edges[tr]
			for e := 0; e < 2; e++ {
				curedge := edgest[e]
				if !unchecked[curedge] {
					continue
				}

				// Only check the edge if it is not part of the outer hull.
				if t2 := walkt[e]; t2 >= 0 {
					trit2 := t.Tri[t2]
					walkt2 := t.Walk[t2]
					edgest2 := t.Edges[t2]

					f := indexOf(walkt2, tr)
					if f < 0 {
						return flips, errors.Wrapf(ErrCorrupt, "improve: simplex %d does not walk back to %d", t2, tr)
					}
					A := (e + 2) % 3
					B := (A + 1) % 3
					C := (B + 1) % 3
					D := (f + 2) % 3
					if shouldFlip(point(trit[A]), point(trit[B]), point(trit[C]), point(trit2[D])) {
						// The diagonal needs to be swapped.
						flipped = true
						flips++
						n1 := trit[A]
						n2 := trit[B]
						n3 := trit[C]
						n4 := trit2[D]
						w1 := walkt[A]
						w2 := walkt[C]
						e1 := edgest[A]
						e2 := edgest[C]
						diag := edgest[e]
						var w3, w4, e3, e4 int
						if trit2[(D+1)%3] == n3 {
							w3 = walkt2[D]
							w4 = walkt2[(D+2)%3]
							e3 = edgest2[D]
							e4 = edgest2[(D+2)%3]
						} else {
							w3 = walkt2[(D+2)%3]
							w4 = walkt2[D]
							e3 = edgest2[(D+2)%3]
							e4 = edgest2[D]
						}

						// Update the Tri array.
						trit[0], trit[1], trit[2] = n1, n2, n4
						trit2[0], trit2[1], trit2[2] = n1, n4, n3

						// Update the Walk array.
						walkt[0], walkt[1], walkt[2] = w1, w4, t2
						walkt2[0], walkt2[1], walkt2[2] = tr, w3, w2
						if w2 >= 0 {
							replaceNeighbor(t.Walk[w2], tr, t2)
						}
						if w4 >= 0 {
							replaceNeighbor(t.Walk[w4], t2, tr)
						}

						// Update the Edges array. The new diagonal inherits
						// the global number of the old one.
						edgest[0], edgest[1], edgest[2] = e1, e4, diag
						edgest2[0], edgest2[1], edgest2[2] = diag, e3, e2

						// Update the Vertices array.
						t.Vertices[n1] = append(t.Vertices[n1], t2)
						t.Vertices[n2] = removeSimplex(t.Vertices[n2], t2)
						t.Vertices[n3] = removeSimplex(t.Vertices[n3], tr)
						t.Vertices[n4] = append(t.Vertices[n4], tr)
					}
				}

				// The edge has now been checked.
				unchecked[curedge] = false
			}
		}

		// If no edges have been flipped this pass, then stop.
		if !flipped {
			break
		}
	}
	return flips, nil
}

// checkTables verifies the shape and index ranges of the 2-D tables, so
// that Improve can index them without bounds failures.
func (t *Triangulation) checkTables(nrs int) error {
	if len(t.Walk) != len(t.Tri) || len(t.Edges) != len(t.Tri) {
		return errors.Wrapf(ErrCorrupt, "%d simplices, %d Walk rows, %d Edges rows", len(t.Tri), len(t.Walk), len(t.Edges))
	}
	for s, tri := range t.Tri {
		if len(tri) != 3 || len(t.Walk[s]) != 3 || len(t.Edges[s]) != 3 {
			return errors.Wrapf(ErrCorrupt, "simplex %d has rows of length %d, %d, %d", s, len(tri), len(t.Walk[s]), len(t.Edges[s]))
		}
		for j := 0; j < 3; j++ {
			if v := tri[j]; v < 0 || v >= nrs || v >= len(t.Vertices) {
				return errors.Wrapf(ErrCorrupt, "simplex %d has vertex %d", s, v)
			}
			if w := t.Walk[s][j]; w < -1 || w >= len(t.Tri) {
				return errors.Wrapf(ErrCorrupt, "simplex %d walks to %d", s, w)
			}
			if e := t.Edges[s][j]; e < 0 || e >= t.NumEdges {
				return errors.Wrapf(ErrCorrupt, "simplex %d has edge %d, NumEdges is %d", s, e, t.NumEdges)
			}
		}
	}
	return nil
}

// shouldFlip decides whether the diagonal bc of the quadrilateral formed by
// triangle abc and the opposite point d has to be replaced by ad. This is
// the in-circle test decomposed into the angles at a and d; the order of the
// checks settles ties for co-linear and co-circular points.
func shouldFlip(a, b, c, d [2]float64) bool {
	for _, v := range [...]float64{a[0], a[1], b[0], b[1], c[0], c[1], d[0], d[1]} {
		if math.IsNaN(v) {
			return false
		}
	}
	ab := various.Sub2(a, b)
	ac := various.Sub2(a, c)
	db := various.Sub2(d, b)
	dc := various.Sub2(d, c)
	Q := various.Dot2(ab, ac)
	R := various.Dot2(db, ab)
	S := various.Dot2(ac, dc)
	T := various.Dot2(db, dc)
	QD := various.Cross2(ab, ac) >= 0
	RD := various.Cross2(db, ab) >= 0
	SD := various.Cross2(ac, dc) >= 0
	TD := various.Cross2(dc, db) >= 0
	var n int
	for _, on := range [...]bool{QD, RD, SD, TD} {
		if on {
			n++
		}
	}
	sig := n < 2
	switch {
	case QD == sig:
		return true
	case RD == sig:
		return false
	case SD == sig:
		return false
	case TD == sig:
		return true
	case Q < 0 && T < 0 || R > 0 && S > 0:
		return true
	case R < 0 && S < 0 || Q > 0 && T > 0:
		return false
	}
	qt := T
	if Q < 0 {
		qt = Q
	}
	rs := S
	if R < 0 {
		rs = R
	}
	return qt < rs
}

func replaceNeighbor(walk []int, old, nb int) {
	if i := indexOf(walk, old); i >= 0 {
		walk[i] = nb
	}
}

func removeSimplex(list []int, s int) []int {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
