package gendelaunay

import (
	"github.com/fogleman/delaunay"
	"github.com/pkg/errors"
)

// fastBackend is the approximate 2-D sweep-hull triangulation. It keeps the
// adjacency of the sweep, so Finish only has to derive Vertices and Edges.
type fastBackend struct{}

func (b *fastBackend) Kind() Kind {
	return KindFastApprox
}

func (b *fastBackend) Triangulate(samples [][]float64) (*Triangulation, error) {
	if len(samples) != 2 {
		return nil, errors.Wrapf(ErrUnsupportedDimension, "fast back-end: dimension %d, must be 2", len(samples))
	}
	nrs := NumSamples(samples)
	pts := make([]delaunay.Point, 0, nrs)
	for i := 0; i < nrs; i++ {
		pts = append(pts, delaunay.Point{X: samples[0][i], Y: samples[1][i]})
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, errors.Wrap(ErrDegenerate, err.Error())
	}
	if len(tri.Triangles) == 0 {
		return nil, errors.Wrap(ErrDegenerate, "fast back-end: no triangles")
	}
	t := newHalfedgeMesh(tri.Triangles, tri.Halfedges).triangulation()

	// Near-duplicate points are skipped by the sweep.
	if err := checkUsed(t.Tri, nrs); err != nil {
		return nil, err
	}
	return t, nil
}
