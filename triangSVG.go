package gendelaunay

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

const (
	svgTriangleStyle = "fill:none;stroke:rgb(40,40,40);stroke-width:1"
	svgPointStyle    = "fill:rgb(200,30,30)"
)

// ExportSVG draws a 2-D triangulation of samples, scaled to fit a canvas of
// the given size.
func (t *Triangulation) ExportSVG(w io.Writer, samples [][]float64, width, height int) error {
	if len(samples) != 2 {
		return errors.Wrapf(ErrUnsupportedDimension, "svg: dimension %d, must be 2", len(samples))
	}
	if d := t.SimplexDim(); d != 2 && d != -1 {
		return errors.Wrapf(ErrDimensionMismatch, "svg: simplices of dimension %d", d)
	}
	nrs := NumSamples(samples)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < nrs; i++ {
		minX, maxX = math.Min(minX, samples[0][i]), math.Max(maxX, samples[0][i])
		minY, maxY = math.Min(minY, samples[1][i]), math.Max(maxY, samples[1][i])
	}
	const margin = 10
	scale := math.Min(float64(width-2*margin)/(maxX-minX), float64(height-2*margin)/(maxY-minY))
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	// The y axis points up in sample space and down in the image.
	px := func(i int) (int, int) {
		x := margin + (samples[0][i]-minX)*scale
		y := float64(height) - margin - (samples[1][i]-minY)*scale
		return int(math.Round(x)), int(math.Round(y))
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")
	xs := make([]int, 3)
	ys := make([]int, 3)
	for _, tri := range t.Tri {
		for j, v := range tri {
			xs[j], ys[j] = px(v)
		}
		canvas.Polygon(xs, ys, svgTriangleStyle)
	}
	for i := 0; i < nrs; i++ {
		x, y := px(i)
		canvas.Circle(x, y, 2, svgPointStyle)
	}
	canvas.End()
	return nil
}
