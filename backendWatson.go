package gendelaunay

import (
	"github.com/pkg/errors"

	"github.com/Flokey82/gendelaunay/incremental"
)

// watsonBackend inserts the points one by one with floating point
// circumsphere tests. Inputs it cannot handle robustly (inverted or flat
// cells) fail with ErrDegenerate.
type watsonBackend struct {
	cfg BackendConfig
}

func (b *watsonBackend) Kind() Kind {
	return KindWatsonExact
}

func (b *watsonBackend) Triangulate(samples [][]float64) (*Triangulation, error) {
	dim := len(samples)
	if dim < 2 || dim > 3 {
		return nil, errors.Wrapf(ErrUnsupportedDimension, "watson back-end: dimension %d", dim)
	}
	res, err := incremental.Triangulate(samplePoints(samples), incremental.Options{
		SuperScale: b.cfg.SuperSimplexScale,
	})
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return fromResult(res, dim)
}
