package gendelaunay

import "github.com/pkg/errors"

// Local vertex pairs of the six edges of a tetrahedron.
var (
	tetEdgeA = [6]int{0, 0, 0, 1, 1, 2}
	tetEdgeB = [6]int{1, 2, 3, 2, 3, 3}
)

// Finish calculates the helper arrays Vertices, Walk and Edges if they have
// not been calculated yet. Walk and Edges are only derived for triangles and
// tetrahedra; for higher dimensional simplices they are left nil.
//
// Back-ends that already know some of the helper arrays (for example the
// adjacency produced by a sweep-hull algorithm) set them before calling
// Finish and do not pay for their recomputation.
func (t *Triangulation) Finish(samples [][]float64) error {
	if len(t.Tri) == 0 {
		return errors.Wrap(ErrDegenerate, "finish: no simplices")
	}
	mdim := len(t.Tri[0]) - 1
	if mdim < 2 {
		return errors.Wrapf(ErrInvalidDimension, "finish: simplex dimension %d", mdim)
	}
	if t.Vertices == nil {
		if err := t.BuildVertices(NumSamples(samples)); err != nil {
			return err
		}
	}
	if mdim > 3 {
		return nil
	}
	if t.Walk == nil {
		if err := t.BuildWalk(); err != nil {
			return err
		}
	}
	if t.Edges == nil {
		if err := t.BuildEdges(); err != nil {
			return err
		}
	}
	return nil
}

// BuildVertices (re)computes the inverse of Tri for nrs points.
func (t *Triangulation) BuildVertices(nrs int) error {
	// Count the simplices per point so each list is allocated exactly once.
	nverts := make([]int, nrs)
	for i, tri := range t.Tri {
		for _, v := range tri {
			if v < 0 || v >= nrs {
				return errors.Wrapf(ErrCorrupt, "simplex %d references point %d of %d", i, v, nrs)
			}
			nverts[v]++
		}
	}
	vertices := make([][]int, nrs)
	for i := range vertices {
		vertices[i] = make([]int, 0, nverts[i])
	}
	for i, tri := range t.Tri {
		for _, v := range tri {
			vertices[v] = append(vertices[v], i)
		}
	}
	t.Vertices = vertices
	return nil
}

// BuildWalk (re)computes the simplex adjacency from Tri and Vertices.
//
// Face j of a simplex is spanned by its local vertices j, j+1 (and j+2 for
// tetrahedra), modulo the arity. The neighbor is found by intersecting the
// incidence lists of the face's points, which costs O(T * degree^2).
func (t *Triangulation) BuildWalk() error {
	mdim := t.SimplexDim()
	if mdim < 2 || mdim > 3 {
		return errors.Wrapf(ErrUnsupportedDimension, "walk: simplex dimension %d", mdim)
	}
	if t.Vertices == nil {
		return errors.Wrap(ErrNotFinished, "walk: Vertices is required")
	}
	mdim1 := mdim + 1
	walk := make([][]int, len(t.Tri))
	for i, tri := range t.Tri {
		walk[i] = make([]int, mdim1)
		for j := 0; j < mdim1; j++ {
			var face []int
			if mdim == 2 {
				face = []int{tri[j], tri[(j+1)%mdim1]}
			} else {
				face = []int{tri[j], tri[(j+1)%mdim1], tri[(j+2)%mdim1]}
			}
			walk[i][j] = t.faceNeighbor(i, face)
		}
	}
	t.Walk = walk
	return nil
}

// faceNeighbor returns the first simplex other than s that contains all
// points of face, or -1.
func (t *Triangulation) faceNeighbor(s int, face []int) int {
candidates:
	for _, c := range t.Vertices[face[0]] {
		if c == s {
			continue
		}
		for _, p := range face[1:] {
			if indexOf(t.Vertices[p], c) < 0 {
				continue candidates
			}
		}
		return c
	}
	return -1
}

// BuildEdges (re)computes the global edge numbers and NumEdges.
func (t *Triangulation) BuildEdges() error {
	mdim := t.SimplexDim()
	if mdim < 2 || mdim > 3 {
		return errors.Wrapf(ErrUnsupportedDimension, "edges: simplex dimension %d", mdim)
	}
	edim := 3 * (mdim - 1)
	edges := make([][]int, len(t.Tri))
	for i := range edges {
		edges[i] = make([]int, edim)
		for j := range edges[i] {
			edges[i][j] = -1
		}
	}
	var numEdges int
	if mdim == 2 {
		if t.Walk == nil {
			return errors.Wrap(ErrNotFinished, "edges: Walk is required")
		}
		for i := range t.Tri {
			for j := 0; j < 3; j++ {
				if edges[i][j] >= 0 {
					continue
				}
				// This edge doesn't have a global edge number yet.
				if othtri := t.Walk[i][j]; othtri >= 0 {
					cside := indexOf(t.Walk[othtri], i)
					if cside < 0 {
						return errors.Wrapf(ErrCorrupt, "edges: simplex %d does not walk back to %d", othtri, i)
					}
					edges[othtri][cside] = numEdges
				}
				edges[i][j] = numEdges
				numEdges++
			}
		}
	} else {
		if t.Vertices == nil {
			return errors.Wrap(ErrNotFinished, "edges: Vertices is required")
		}
		for i, tri := range t.Tri {
			for j := 0; j < 6; j++ {
				if edges[i][j] >= 0 {
					continue
				}
				endpt1 := tri[tetEdgeA[j]]
				endpt2 := tri[tetEdgeB[j]]

				// Every simplex containing both end points shares the edge.
				for _, k := range t.Vertices[endpt1] {
					if indexOf(t.Vertices[endpt2], k) < 0 {
						continue
					}
					trik := t.Tri[k]
					for l := 0; l < 6; l++ {
						a, b := trik[tetEdgeA[l]], trik[tetEdgeB[l]]
						if (a == endpt1 && b == endpt2) || (a == endpt2 && b == endpt1) {
							edges[k][l] = numEdges
						}
					}
				}
				edges[i][j] = numEdges
				numEdges++
			}
		}
	}
	t.Edges = edges
	t.NumEdges = numEdges
	return nil
}
