package gendelaunay

// halfedgeMesh is a triangle mesh in half-edge form. Side s of triangle s/3
// starts at Triangles[s] and ends where the next side of the triangle
// starts. Halfedges[s] is the opposite side in the neighboring triangle, or
// -1 on the hull.
type halfedgeMesh struct {
	Triangles    []int
	Halfedges    []int
	numTriangles int
}

func newHalfedgeMesh(tris, halfedges []int) *halfedgeMesh {
	return &halfedgeMesh{
		Triangles:    tris,
		Halfedges:    halfedges,
		numTriangles: len(tris) / 3,
	}
}

func s_to_t(s int) int {
	return (s / 3)
}

func (hm *halfedgeMesh) t_circulate_r(out_r []int, t int) []int {
	out_r = out_r[:0]
	for i := 0; i < 3; i++ {
		out_r = append(out_r, hm.s_begin_r(3*t+i))
	}
	return out_r
}

func (hm *halfedgeMesh) s_begin_r(s int) int {
	return hm.Triangles[s]
}

// s_outer_t returns the triangle on the other side of s, or -1.
func (hm *halfedgeMesh) s_outer_t(s int) int {
	if hm.Halfedges[s] < 0 {
		return -1
	}
	return s_to_t(hm.Halfedges[s])
}

// triangulation converts the mesh into Tri and Walk tables. Side j of a
// triangle spans its local vertices j and j+1, which is the face order of
// Walk.
func (hm *halfedgeMesh) triangulation() *Triangulation {
	tri := make([][]int, hm.numTriangles)
	walk := make([][]int, hm.numTriangles)
	for t := range tri {
		tri[t] = hm.t_circulate_r(make([]int, 0, 3), t)
		walk[t] = make([]int, 3)
		for j := 0; j < 3; j++ {
			walk[t][j] = hm.s_outer_t(3*t + j)
		}
	}
	return &Triangulation{Tri: tri, Walk: walk}
}
