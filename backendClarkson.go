package gendelaunay

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"

	"github.com/Flokey82/gendelaunay/incremental"
	"github.com/Flokey82/gendelaunay/various"
)

// clarksonBackend triangulates coordinates rounded to the nearest integer.
// Callers with closely clustered values should Scale them first.
//
// In 2-D the points are lifted onto the paraboloid z = x^2 + y^2 and the
// lower faces of their convex hull are the Delaunay triangles. Higher
// dimensions use exact incremental insertion.
type clarksonBackend struct {
	cfg BackendConfig
}

func (b *clarksonBackend) Kind() Kind {
	return KindClarksonExact
}

func (b *clarksonBackend) Triangulate(samples [][]float64) (*Triangulation, error) {
	dim := len(samples)
	if dim == 2 {
		return b.liftedHull(samples)
	}
	res, err := incremental.Triangulate(samplePoints(samples), incremental.Options{
		Exact:      true,
		Round:      true,
		SuperScale: b.cfg.ExactSuperSimplexScale,
	})
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return fromResult(res, dim)
}

func (b *clarksonBackend) liftedHull(samples [][]float64) (*Triangulation, error) {
	nrs := NumSamples(samples)
	if nrs < 3 {
		return nil, errors.Wrapf(ErrDegenerate, "clarkson back-end: %d points", nrs)
	}
	pts := make([]r3.Vector, nrs)
	seen := make(map[[2]float64]int, nrs)
	for i := range pts {
		p := [2]float64{math.Round(samples[0][i]), math.Round(samples[1][i])}
		if j, ok := seen[p]; ok {
			return nil, errors.Wrapf(ErrDegenerate, "clarkson back-end: points %d and %d round to the same location", j, i)
		}
		seen[p] = i
		pts[i] = various.Lift(p)
	}

	hull := new(quickhull.QuickHull).ConvexHull(pts, true, true, b.cfg.HullEpsilon)
	var tri [][]int
	for f := 0; f+2 < len(hull.Indices); f += 3 {
		i0, i1, i2 := hull.Indices[f], hull.Indices[f+1], hull.Indices[f+2]
		if various.FaceNormal(pts[i0], pts[i1], pts[i2]).Z >= 0 {
			continue
		}
		// Lower faces are counter-clockwise seen from below.
		tri = append(tri, []int{i0, i2, i1})
	}
	if len(tri) == 0 {
		return nil, errors.Wrap(ErrDegenerate, "clarkson back-end: all points are co-linear")
	}

	// Points on a hull face (co-circular input) are dropped by the hull.
	if err := checkUsed(tri, nrs); err != nil {
		return nil, err
	}
	return &Triangulation{Tri: tri}, nil
}
