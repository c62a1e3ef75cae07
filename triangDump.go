package gendelaunay

import (
	"fmt"
	"strings"
)

// String returns a human readable dump of all four tables.
func (t *Triangulation) String() string {
	return t.SampleString(nil)
}

// SampleString returns a human readable dump of the sample coordinates (if
// not nil) followed by all four tables.
func (t *Triangulation) SampleString(samples [][]float64) string {
	var sb strings.Builder
	if samples != nil {
		nrs := NumSamples(samples)
		fmt.Fprintf(&sb, "\nsamples %d\n", nrs)
		for i := 0; i < nrs; i++ {
			fmt.Fprintf(&sb, "  %d ->", i)
			for _, s := range samples {
				fmt.Fprintf(&sb, " %g", s[i])
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	writeTable(&sb, "Tri (triangles -> vertices)", t.Tri)
	writeTable(&sb, "Vertices (vertices -> triangles)", t.Vertices)
	writeTable(&sb, "Walk (triangles -> triangles)", t.Walk)
	writeTable(&sb, "Edges (triangles -> global edges)", t.Edges)
	return sb.String()
}

func writeTable(sb *strings.Builder, label string, table [][]int) {
	fmt.Fprintf(sb, "\n%s %d\n", label, len(table))
	for i, row := range table {
		fmt.Fprintf(sb, "  %d -> ", i)
		for _, v := range row {
			fmt.Fprintf(sb, " %d", v)
		}
		sb.WriteString("\n")
	}
}
