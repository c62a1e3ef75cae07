package gendelaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	square := [][]int{{0, 1, 2}, {0, 2, 3}}
	squareWalk := [][]int{{-1, -1, 1}, {0, -1, -1}}
	tests := []struct {
		name    string
		tri     *Triangulation
		wantErr string
	}{
		{
			name: "valid without walk",
			tri:  &Triangulation{Tri: square},
		},
		{
			name: "valid with walk",
			tri:  &Triangulation{Tri: square, Walk: squareWalk},
		},
		{
			name:    "wrong arity",
			tri:     &Triangulation{Tri: [][]int{{0, 1, 2}, {0, 2, 3, 1}}},
			wantErr: "simplex 1 has 4 vertices, want 3",
		},
		{
			name:    "illegal vertex",
			tri:     &Triangulation{Tri: [][]int{{0, 1, 2}, {0, 2, 4}}},
			wantErr: "simplex 1 has illegal vertex 4",
		},
		{
			name:    "unused point",
			tri:     &Triangulation{Tri: [][]int{{0, 1, 2}}},
			wantErr: "point 3 is not part of any simplex",
		},
		{
			name:    "duplicate simplices",
			tri:     &Triangulation{Tri: [][]int{{0, 1, 2}, {0, 2, 3}, {3, 0, 2}}},
			wantErr: "simplices 1 and 2 are duplicates",
		},
		{
			name:    "walk length",
			tri:     &Triangulation{Tri: square, Walk: squareWalk[:1]},
			wantErr: "walk has 1 rows for 2 simplices",
		},
		{
			name:    "walk out of range",
			tri:     &Triangulation{Tri: square, Walk: [][]int{{-1, -1, 2}, {0, -1, -1}}},
			wantErr: "simplex 0 face 2 walks to illegal simplex 2",
		},
		{
			name:    "walk not symmetric",
			tri:     &Triangulation{Tri: square, Walk: [][]int{{-1, -1, 1}, {-1, -1, -1}}},
			wantErr: "simplex 1 does not walk back to 0",
		},
		{
			name: "walk between simplices sharing a single point",
			tri: &Triangulation{
				Tri:  [][]int{{0, 1, 2}, {2, 3, 4}},
				Walk: [][]int{{1, -1, -1}, {0, -1, -1}},
			},
			wantErr: "simplices 0 and 1 share 1 vertices, want 2",
		},
	}

	samples := [][]float64{
		{0, 1, 1, 0, 2},
		{0, 0, 1, 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := samples
			if tc.name != "walk between simplices sharing a single point" {
				s = unitSquare()
			}
			err := tc.tri.Validate(s)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				assert.True(t, tc.tri.Test(s))
				return
			}
			assert.EqualError(t, err, tc.wantErr)
			assert.False(t, tc.tri.Test(s))
		})
	}
}

func TestValidateBackends(t *testing.T) {
	samples := uniform(7, 2, 300, 1000)
	tri, err := Triangulate(samples, true)
	if assert.NoError(t, err) {
		assert.True(t, tri.Test(samples))
	}
}
