package gendelaunay

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Test checks a triangulation in various ways to make sure it is
// constructed correctly and returns false if there are any problems. This
// method is expensive and provided mainly for debugging purposes.
func (t *Triangulation) Test(samples [][]float64) bool {
	return t.Validate(samples) == nil
}

// Validate performs the checks of Test and returns a description of the
// first problem found, or nil.
//
// Checked, in order: simplex arity, vertex index range, every point used by
// at least one simplex, no duplicate simplices, Walk symmetry (if Walk is
// present) with neighbors sharing exactly dim vertices.
func (t *Triangulation) Validate(samples [][]float64) error {
	dim := len(samples)
	dim1 := dim + 1
	nrs := NumSamples(samples)

	// Verify triangulation dimension.
	for i, tri := range t.Tri {
		if len(tri) != dim1 {
			return errors.Errorf("simplex %d has %d vertices, want %d", i, len(tri), dim1)
		}
	}

	// Verify no illegal vertices.
	for i, tri := range t.Tri {
		for _, v := range tri {
			if v < 0 || v >= nrs {
				return errors.Errorf("simplex %d has illegal vertex %d", i, v)
			}
		}
	}

	// Verify that all points are in at least one simplex.
	nverts := make([]int, nrs)
	for _, tri := range t.Tri {
		for _, v := range tri {
			nverts[v]++
		}
	}
	for i, n := range nverts {
		if n == 0 {
			return errors.Errorf("point %d is not part of any simplex", i)
		}
	}

	// Test for duplicate simplices.
	seen := make(map[string]int, len(t.Tri))
	for i, tri := range t.Tri {
		key := simplexKey(tri)
		if j, ok := seen[key]; ok {
			return errors.Errorf("simplices %d and %d are duplicates", j, i)
		}
		seen[key] = i
	}

	if t.Walk == nil {
		return nil
	}

	// Test for errors in the Walk array.
	if len(t.Walk) != len(t.Tri) {
		return errors.Errorf("walk has %d rows for %d simplices", len(t.Walk), len(t.Tri))
	}
	for i, walk := range t.Walk {
		for j, nb := range walk {
			if nb == -1 {
				continue
			}
			if nb < 0 || nb >= len(t.Tri) {
				return errors.Errorf("simplex %d face %d walks to illegal simplex %d", i, j, nb)
			}
			if indexOf(t.Walk[nb], i) < 0 {
				return errors.Errorf("simplex %d does not walk back to %d", nb, i)
			}

			// Make sure the two simplices share dim vertices.
			var sb int
			for _, v := range t.Tri[i] {
				if indexOf(t.Tri[nb], v) >= 0 {
					sb++
				}
			}
			if sb != dim {
				return errors.Errorf("simplices %d and %d share %d vertices, want %d", i, nb, sb, dim)
			}
		}
	}
	return nil
}

// simplexKey returns a key identifying the unordered vertex set of tri.
func simplexKey(tri []int) string {
	sorted := slices.Clone(tri)
	slices.Sort(sorted)
	var sb strings.Builder
	for _, v := range sorted {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(',')
	}
	return sb.String()
}
