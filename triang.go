package gendelaunay

// Triangulation is an N-dimensional triangulation made of four parallel
// tables. Only Tri is mandatory; Vertices, Walk and Edges are helper arrays
// that may be nil and are derived on demand by Finish.
type Triangulation struct {
	Tri      [][]int // simplices -> vertices, len(Tri[t]) == dim+1
	Vertices [][]int // vertices -> simplices
	Walk     [][]int // simplices -> neighboring simplices, -1 on the hull
	Edges    [][]int // simplices -> global edge numbers, 3*(dim-1) per simplex
	NumEdges int     // number of unique global edge numbers
}

// New returns an empty triangulation.
func New() *Triangulation {
	return &Triangulation{}
}

// NewCustom builds a triangulation from precomputed tables. The tables are
// used as given (not copied). If samples is not nil, the helper arrays that
// are nil are derived from tri.
func NewCustom(samples [][]float64, tri, vertices, walk, edges [][]int, numEdges int) (*Triangulation, error) {
	t := &Triangulation{
		Tri:      tri,
		Vertices: vertices,
		Walk:     walk,
		Edges:    edges,
		NumEdges: numEdges,
	}
	if samples != nil {
		if err := t.Finish(samples); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Clone returns a deep copy of the triangulation. Mutating the clone (for
// example with Improve) leaves the original untouched.
func (t *Triangulation) Clone() *Triangulation {
	return &Triangulation{
		Tri:      copyTable(t.Tri),
		Vertices: copyTable(t.Vertices),
		Walk:     copyTable(t.Walk),
		Edges:    copyTable(t.Edges),
		NumEdges: t.NumEdges,
	}
}

// NumSimplices returns the number of triangles / tetrahedra / simplices.
func (t *Triangulation) NumSimplices() int {
	return len(t.Tri)
}

// SimplexDim returns the dimension of the simplices (2 for triangles, 3 for
// tetrahedra), or -1 if the triangulation is empty.
func (t *Triangulation) SimplexDim() int {
	if len(t.Tri) == 0 {
		return -1
	}
	return len(t.Tri[0]) - 1
}

// t_circulate_t returns the neighbors of simplex s that are not on the hull.
func (t *Triangulation) t_circulate_t(out_t []int, s int) []int {
	out_t = out_t[:0]
	for _, nb := range t.Walk[s] {
		if nb >= 0 {
			out_t = append(out_t, nb)
		}
	}
	return out_t
}

// r_circulate_t returns the simplices incident to point r.
func (t *Triangulation) r_circulate_t(out_t []int, r int) []int {
	out_t = out_t[:0]
	return append(out_t, t.Vertices[r]...)
}

// Neighbors returns the simplices sharing a face with simplex s.
func (t *Triangulation) Neighbors(s int) []int {
	return t.t_circulate_t(nil, s)
}

// Incident returns the simplices containing point r.
func (t *Triangulation) Incident(r int) []int {
	return t.r_circulate_t(nil, r)
}

func copyTable(src [][]int) [][]int {
	if src == nil {
		return nil
	}
	dst := make([][]int, len(src))
	for i, row := range src {
		if row == nil {
			continue
		}
		dst[i] = append(make([]int, 0, len(row)), row...)
	}
	return dst
}

// indexOf returns the position of v in s, or -1.
func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
