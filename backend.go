package gendelaunay

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/Flokey82/gendelaunay/incremental"
)

// Kind identifies a triangulation back-end.
type Kind int

const (
	KindFastApprox Kind = iota
	KindClarksonExact
	KindWatsonExact
	KindGeneralDimExact
)

var kindNames = [...]string{
	KindFastApprox:      "fast",
	KindClarksonExact:   "clarkson",
	KindWatsonExact:     "watson",
	KindGeneralDimExact: "general",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the back-end kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, errors.Errorf("unknown back-end %q", name)
}

// Backend constructs the simplices of a triangulation from a point set.
// Implementations must not modify samples. The returned triangulation has
// at least Tri set; missing helper arrays are derived by the factory.
type Backend interface {
	Kind() Kind
	Triangulate(samples [][]float64) (*Triangulation, error)
}

// NewBackend returns the default implementation of back-end k.
func NewBackend(k Kind, cfg *BackendConfig) (Backend, error) {
	if cfg == nil {
		cfg = NewBackendConfig()
	}
	switch k {
	case KindFastApprox:
		return &fastBackend{}, nil
	case KindClarksonExact:
		return &clarksonBackend{cfg: *cfg}, nil
	case KindWatsonExact:
		return &watsonBackend{cfg: *cfg}, nil
	case KindGeneralDimExact:
		return &generalBackend{cfg: *cfg}, nil
	}
	return nil, errors.Errorf("unknown back-end %v", k)
}

// fromResult converts the output of the incremental engine. The engine
// stores the neighbor opposite each vertex; for triangles and tetrahedra
// this becomes Walk, whose face j starts at local vertex j.
func fromResult(res *incremental.Result, dim int) (*Triangulation, error) {
	if len(res.Duplicates) > 0 {
		return nil, errors.Wrapf(ErrDegenerate, "%d duplicate points, first is %d", len(res.Duplicates), res.Duplicates[0])
	}
	t := &Triangulation{Tri: res.Simplices}
	if dim <= 3 {
		walk := make([][]int, len(res.Neighbors))
		for i, nb := range res.Neighbors {
			walk[i] = make([]int, dim+1)
			for j := range walk[i] {
				walk[i][j] = nb[(j+dim)%(dim+1)]
			}
		}
		t.Walk = walk
	}
	return t, nil
}

// wrapEngineErr maps engine failures onto ErrDegenerate.
func wrapEngineErr(err error) error {
	if errors.Is(err, incremental.ErrDegenerate) {
		return errors.Wrap(ErrDegenerate, err.Error())
	}
	return err
}

// checkUsed returns an error if one of the first nrs points is not a vertex
// of tri.
func checkUsed(tri [][]int, nrs int) error {
	used := make([]bool, nrs)
	for _, s := range tri {
		for _, v := range s {
			used[v] = true
		}
	}
	for i, u := range used {
		if !u {
			return errors.Wrapf(ErrDegenerate, "point %d is not part of the triangulation", i)
		}
	}
	return nil
}
