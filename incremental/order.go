package incremental

import (
	"math"
	"sort"
)

// insertionOrder returns the indices of pts ordered along a snake path
// through a square grid over the first two coordinates, so consecutive
// insertions are close to each other and point location walks stay short.
func insertionOrder(pts [][]float64) []int {
	n := len(pts)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n < 2 {
		return order
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	cells := int(math.Ceil(math.Sqrt(float64(n) / 4)))
	if cells < 1 {
		cells = 1
	}
	cell := func(v, lo, hi float64) int {
		if hi <= lo {
			return 0
		}
		c := int(float64(cells) * (v - lo) / (hi - lo))
		if c >= cells {
			c = cells - 1
		}
		return c
	}
	keys := make([]int, n)
	for i, p := range pts {
		cx := cell(p[0], minX, maxX)
		cy := cell(p[1], minY, maxY)
		if cy%2 == 1 {
			cx = cells - 1 - cx
		}
		keys[i] = cy*cells + cx
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})
	return order
}
