// Package incremental implements Bowyer-Watson insertion of points into a
// Delaunay triangulation of any dimension.
//
// Points are inserted into an enclosing super simplex. For every point the
// simplices whose circumsphere contains it are removed and the resulting
// cavity is re-triangulated by connecting its boundary faces to the point.
// Simplices using a super simplex vertex are dropped at the end.
//
// Two predicate modes are available. The floating point mode caches the
// circumsphere of every simplex and reports inconsistencies (inverted or
// flat cells) as ErrDegenerate. The exact mode evaluates orientation and
// in-sphere determinants with a floating point filter and falls back to
// big integer arithmetic on an exact integer embedding of the input.
//
// In both modes a result whose boundary is not the convex hull of the input,
// because the finite super simplex cut off a thin simplex, fails with
// ErrDegenerate.
package incremental

import (
	"encoding/binary"
	"math"
	"math/big"
	"slices"

	"github.com/pkg/errors"
)

// ErrDegenerate is returned if no triangulation of the input can be built.
var ErrDegenerate = errors.New("degenerate point set")

// Options configures Triangulate.
type Options struct {
	// Exact selects exact predicates.
	Exact bool

	// Round rounds every coordinate to the nearest integer before insertion.
	Round bool

	// SuperScale is the size of the super simplex relative to the bounding
	// box of the input. Values below 1 are treated as 1.
	SuperScale float64
}

// Result holds the simplices of a triangulation.
type Result struct {
	// Simplices lists the point indices of every simplex. All simplices have
	// the same orientation sign.
	Simplices [][]int

	// Neighbors[t][i] is the simplex sharing the face opposite
	// Simplices[t][i], or -1 on the hull.
	Neighbors [][]int

	// Duplicates lists the points that were skipped because they coincide
	// with an earlier point.
	Duplicates []int
}

type simplex struct {
	v    []int
	nb   []int
	c    []float64 // circumcenter, floating point mode only
	r2   float64
	dead bool
}

type boundaryFace struct {
	s, i int
}

type engine struct {
	dim   int
	n     int // number of input points; super vertices follow
	exact bool
	pts   [][]float64
	ipts  [][]*big.Int // exact mode, or built on demand by exactOrient
	simp  []simplex
	last  int
	epoch int
	in    []int
	out   []int
	scr   [][][]float64
}

// Triangulate computes the Delaunay triangulation of points, given as one
// coordinate row per point.
func Triangulate(points [][]float64, opts Options) (*Result, error) {
	n := len(points)
	if n == 0 {
		return nil, errors.Wrap(ErrDegenerate, "no points")
	}
	dim := len(points[0])
	if dim < 2 {
		return nil, errors.Errorf("dimension %d, must be 2 or higher", dim)
	}
	scale := opts.SuperScale
	if scale < 1 {
		scale = 1
	}

	e := &engine{
		dim:   dim,
		n:     n,
		exact: opts.Exact,
		pts:   make([][]float64, n, n+dim+1),
		last:  -1,
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, errors.Errorf("point %d has %d coordinates, want %d", i, len(p), dim)
		}
		q := make([]float64, dim)
		for k, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, errors.Wrapf(ErrDegenerate, "point %d has a non-finite coordinate", i)
			}
			if opts.Round {
				x = math.Round(x)
			}
			if x == 0 {
				x = 0 // drop the sign of -0
			}
			q[k] = x
		}
		e.pts[i] = q
	}

	dup, dups := e.duplicates()
	if distinct := n - len(dups); distinct < dim+1 {
		return nil, errors.Wrapf(ErrDegenerate, "%d distinct points, need at least %d", distinct, dim+1)
	}
	e.addSuperSimplex(scale, opts.Round)
	if e.exact {
		e.ipts = embed(e.pts)
	}

	for _, p := range insertionOrder(e.pts[:n]) {
		if dup[p] {
			continue
		}
		if err := e.insert(p); err != nil {
			return nil, err
		}
	}
	return e.result(dup, dups)
}

// duplicates marks every point equal to an earlier one.
func (e *engine) duplicates() ([]bool, []int) {
	dup := make([]bool, e.n)
	var dups []int
	seen := make(map[string]int, e.n)
	key := make([]byte, 0, 8*e.dim)
	for i, p := range e.pts[:e.n] {
		key = key[:0]
		for _, x := range p {
			key = binary.LittleEndian.AppendUint64(key, math.Float64bits(x))
		}
		if _, ok := seen[string(key)]; ok {
			dup[i] = true
			dups = append(dups, i)
			continue
		}
		seen[string(key)] = i
	}
	return dup, dups
}

// addSuperSimplex appends the vertices of a simplex enclosing all points and
// creates it as the initial triangulation. Its vertices are base and
// base + L*e_k, which gives it a positive orientation.
func (e *engine) addSuperSimplex(scale float64, round bool) {
	dim := e.dim
	lo := slices.Clone(e.pts[0])
	hi := slices.Clone(e.pts[0])
	for _, p := range e.pts[1:e.n] {
		for k, x := range p {
			lo[k] = math.Min(lo[k], x)
			hi[k] = math.Max(hi[k], x)
		}
	}
	var ext float64
	for k := range lo {
		ext = math.Max(ext, hi[k]-lo[k])
	}
	size := (scale + 2) * float64(dim) * ext
	base := make([]float64, dim)
	for k := range base {
		base[k] = lo[k] - scale*ext
		if round {
			base[k] = math.Floor(base[k])
		}
	}
	if round {
		size = math.Ceil(size)
	}
	e.pts = append(e.pts, base)
	for k := 0; k < dim; k++ {
		v := slices.Clone(base)
		v[k] += size
		e.pts = append(e.pts, v)
	}

	v := make([]int, dim+1)
	nb := make([]int, dim+1)
	for k := range v {
		v[k] = e.n + k
		nb[k] = -1
	}
	s := simplex{v: v, nb: nb}
	if !e.exact {
		s.c, s.r2, _ = circumsphere(e.pts, v)
	}
	e.simp = append(e.simp, s)
	e.last = 0
}

func (e *engine) insert(p int) error {
	s := e.locate(p)
	if s < 0 {
		return errors.Wrapf(ErrDegenerate, "point %d could not be located", p)
	}
	cavity, boundary := e.cavity(s, p)

	first := len(e.simp)
	open := make(map[string]boundaryFace, len(boundary))
	for _, f := range boundary {
		v := slices.Clone(e.simp[f.s].v)
		v[f.i] = p
		nb := make([]int, e.dim+1)
		for k := range nb {
			nb[k] = -1
		}
		id := len(e.simp)
		outside := e.simp[f.s].nb[f.i]
		nb[f.i] = outside
		if outside >= 0 {
			if k := slices.Index(e.simp[outside].nb, f.s); k >= 0 {
				e.simp[outside].nb[k] = id
			}
		}
		ns := simplex{v: v, nb: nb}
		if !e.exact {
			if e.orient(v) <= 0 {
				return errors.Wrapf(ErrDegenerate, "inserting point %d creates an inverted cell", p)
			}
			var ok bool
			if ns.c, ns.r2, ok = circumsphere(e.pts, v); !ok {
				return errors.Wrapf(ErrDegenerate, "inserting point %d creates a flat cell", p)
			}
		}
		e.simp = append(e.simp, ns)

		for k := range v {
			if k == f.i {
				continue
			}
			key := faceKey(v, k)
			if o, ok := open[key]; ok {
				e.simp[id].nb[k] = o.s
				e.simp[o.s].nb[o.i] = id
				delete(open, key)
			} else {
				open[key] = boundaryFace{id, k}
			}
		}
	}
	if len(open) != 0 {
		return errors.Wrapf(ErrDegenerate, "cavity of point %d is not closed", p)
	}
	for _, c := range cavity {
		e.simp[c].dead = true
	}
	e.last = first
	return nil
}

// locate returns a live simplex containing point p, found by a visibility
// walk from the most recently created simplex.
func (e *engine) locate(p int) int {
	s := e.last
	if s < 0 || e.simp[s].dead {
		return e.scan(p)
	}
	v := make([]int, e.dim+1)
	for step := 0; step <= 2*len(e.simp); step++ {
		next := -1
		sv := e.simp[s]
		for j := range sv.v {
			i := (j + step) % len(sv.v)
			copy(v, sv.v)
			v[i] = p
			if e.orient(v) < 0 {
				next = sv.nb[i]
				if next < 0 {
					return e.scan(p)
				}
				break
			}
		}
		if next < 0 {
			return s
		}
		s = next
	}
	return e.scan(p)
}

// scan is the linear fallback of locate.
func (e *engine) scan(p int) int {
	v := make([]int, e.dim+1)
simplices:
	for s := range e.simp {
		if e.simp[s].dead {
			continue
		}
		for i := range e.simp[s].v {
			copy(v, e.simp[s].v)
			v[i] = p
			if e.orient(v) < 0 {
				continue simplices
			}
		}
		return s
	}
	return -1
}

// cavity collects the simplices whose circumsphere contains p, starting at
// s, and the faces on the cavity boundary.
func (e *engine) cavity(s, p int) ([]int, []boundaryFace) {
	for len(e.in) < len(e.simp) {
		e.in = append(e.in, 0)
		e.out = append(e.out, 0)
	}
	e.epoch++
	e.in[s] = e.epoch

	var cavity []int
	var boundary []boundaryFace
	stack := []int{s}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cavity = append(cavity, c)
		for i, nb := range e.simp[c].nb {
			switch {
			case nb < 0:
				boundary = append(boundary, boundaryFace{c, i})
			case e.in[nb] == e.epoch:
			case e.out[nb] == e.epoch:
				boundary = append(boundary, boundaryFace{c, i})
			case e.inSphere(nb, p):
				e.in[nb] = e.epoch
				stack = append(stack, nb)
			default:
				e.out[nb] = e.epoch
				boundary = append(boundary, boundaryFace{c, i})
			}
		}
	}
	return cavity, boundary
}

// orient returns the orientation sign of the simplex v. In floating point
// mode an unreliable sign is reported as 0.
func (e *engine) orient(v []int) int {
	dim := e.dim
	m := e.scratch(dim)
	p0 := e.pts[v[0]]
	for k := 1; k <= dim; k++ {
		for j := 0; j < dim; j++ {
			m[k-1][j] = e.pts[v[k]][j] - p0[j]
		}
	}
	if sign := filteredSign(detFloat(m)); sign != 0 || !e.exact {
		return sign
	}
	return orientExact(e.ipts, v)
}

// inSphere reports whether p lies strictly inside the circumsphere of
// simplex s.
func (e *engine) inSphere(s, p int) bool {
	sv := e.simp[s]
	if !e.exact {
		return dist2(e.pts[p], sv.c) < sv.r2
	}
	dim := e.dim
	m := e.scratch(dim + 1)
	pp := e.pts[p]
	for k, v := range sv.v {
		var n2 float64
		for j := 0; j < dim; j++ {
			d := e.pts[v][j] - pp[j]
			m[k][j] = d
			n2 += d * d
		}
		m[k][dim] = n2
	}
	sign := filteredSign(detFloat(m))
	if sign == 0 {
		sign = inSphereExact(e.ipts, sv.v, p)
	}
	// All simplices are positively oriented, so the determinant of the rows
	// (v, 1) has the sign (-1)^dim.
	if dim%2 == 1 {
		sign = -sign
	}
	return sign > 0
}

func (e *engine) scratch(n int) [][]float64 {
	for len(e.scr) < n+1 {
		e.scr = append(e.scr, nil)
	}
	if e.scr[n] == nil {
		m := make([][]float64, n)
		for i := range m {
			m[i] = make([]float64, n)
		}
		e.scr[n] = m
	}
	return e.scr[n]
}

func (e *engine) result(dup []bool, dups []int) (*Result, error) {
	idx := make([]int, len(e.simp))
	var simplices [][]int
	for i, s := range e.simp {
		idx[i] = -1
		if s.dead || slices.ContainsFunc(s.v, func(v int) bool { return v >= e.n }) {
			continue
		}
		idx[i] = len(simplices)
		simplices = append(simplices, slices.Clone(s.v))
	}
	if len(simplices) == 0 {
		return nil, errors.Wrap(ErrDegenerate, "all points lie in a common hyperplane")
	}
	neighbors := make([][]int, 0, len(simplices))
	for i, s := range e.simp {
		if idx[i] < 0 {
			continue
		}
		nb := make([]int, len(s.nb))
		for k, o := range s.nb {
			nb[k] = -1
			if o >= 0 {
				nb[k] = idx[o]
			}
		}
		neighbors = append(neighbors, nb)
	}

	used := make([]bool, e.n)
	for _, s := range simplices {
		for _, v := range s {
			used[v] = true
		}
	}
	for i, u := range used {
		if !u && !dup[i] {
			return nil, errors.Wrapf(ErrDegenerate, "point %d is not part of any simplex", i)
		}
	}
	if err := e.checkHull(simplices, neighbors, dup); err != nil {
		return nil, err
	}
	return &Result{
		Simplices:  simplices,
		Neighbors:  neighbors,
		Duplicates: dups,
	}, nil
}

// checkHull returns an error if a face without a neighbor is not a face of
// the convex hull. The finite super simplex can cut off thin simplices along
// the hull, leaving a non-convex triangulation.
func (e *engine) checkHull(simplices, neighbors [][]int, dup []bool) error {
	v := make([]int, e.dim+1)
	for s, nb := range neighbors {
		for k, o := range nb {
			if o >= 0 {
				continue
			}
			for p := 0; p < e.n; p++ {
				if dup[p] || slices.Contains(simplices[s], p) {
					continue
				}
				copy(v, simplices[s])
				v[k] = p
				if e.exactOrient(v) < 0 {
					return errors.Wrapf(ErrDegenerate, "point %d lies outside the hull face opposite %d", p, simplices[s][k])
				}
			}
		}
	}
	return nil
}

// exactOrient is orient with an exact result in both predicate modes.
func (e *engine) exactOrient(v []int) int {
	if sign := e.orient(v); sign != 0 || e.exact {
		return sign
	}
	if e.ipts == nil {
		e.ipts = embed(e.pts)
	}
	return orientExact(e.ipts, v)
}

// faceKey identifies the face of v opposite v[skip].
func faceKey(v []int, skip int) string {
	face := make([]int, 0, len(v)-1)
	for k, x := range v {
		if k != skip {
			face = append(face, x)
		}
	}
	slices.Sort(face)
	key := make([]byte, 0, 8*len(face))
	for _, x := range face {
		key = binary.LittleEndian.AppendUint64(key, uint64(x))
	}
	return string(key)
}
