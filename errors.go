package gendelaunay

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned for fewer than two coordinate arrays.
	ErrInvalidDimension = errors.New("dimension must be 2 or higher")

	// ErrDimensionMismatch is returned when the samples and the simplex arity disagree.
	ErrDimensionMismatch = errors.New("samples dimension does not match")

	// ErrUnsupportedDimension is returned by operations that are only
	// implemented for low dimensions (refinement, Walk, Edges).
	ErrUnsupportedDimension = errors.New("not implemented for this dimension")

	// ErrCorrupt indicates inconsistent Tri/Walk input.
	ErrCorrupt = errors.New("error in triangulation")

	// ErrNotFinished is returned when Walk, Edges or Vertices are required but absent.
	ErrNotFinished = errors.New("triangulation helper arrays missing")

	// ErrDegenerate is returned by back-ends that cannot triangulate the input
	// (too few points, all points co-linear / co-planar, inverted cells).
	ErrDegenerate = errors.New("degenerate input")

	// ErrNoTriangulation is returned by the factory when every back-end failed.
	ErrNoTriangulation = errors.New("no triangulation could be constructed")
)
