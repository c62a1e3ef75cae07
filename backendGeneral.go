package gendelaunay

import "github.com/Flokey82/gendelaunay/incremental"

// generalBackend triangulates in any dimension with exact predicates on the
// unmodified coordinates. It is the fallback of the factory.
type generalBackend struct {
	cfg BackendConfig
}

func (b *generalBackend) Kind() Kind {
	return KindGeneralDimExact
}

func (b *generalBackend) Triangulate(samples [][]float64) (*Triangulation, error) {
	res, err := incremental.Triangulate(samplePoints(samples), incremental.Options{
		Exact:      true,
		SuperScale: b.cfg.ExactSuperSimplexScale,
	})
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return fromResult(res, len(samples))
}
