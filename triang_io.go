package gendelaunay

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/Flokey82/gendelaunay/various"
)

var byteorder = binary.LittleEndian

// WriteBinary writes the triangulation to the given writer. Absent helper
// arrays are preserved as absent.
func (t *Triangulation) WriteBinary(w io.Writer) error {
	// Write the number of global edges.
	if err := binary.Write(w, byteorder, int64(t.NumEdges)); err != nil {
		return err
	}

	// Write the simplices.
	if err := various.WriteIntTable(w, t.Tri); err != nil {
		return err
	}

	// Write the point -> simplex index.
	if err := various.WriteIntTable(w, t.Vertices); err != nil {
		return err
	}

	// Write the adjacency.
	if err := various.WriteIntTable(w, t.Walk); err != nil {
		return err
	}

	// Write the global edge numbers.
	return various.WriteIntTable(w, t.Edges)
}

// ReadTriangulation reads a triangulation written by WriteBinary.
func ReadTriangulation(r io.Reader) (*Triangulation, error) {
	t := &Triangulation{}

	// Read the number of global edges.
	var numEdges int64
	if err := binary.Read(r, byteorder, &numEdges); err != nil {
		return nil, errors.Wrap(err, "reading edge count")
	}
	t.NumEdges = int(numEdges)

	// Read the simplices.
	tri, err := various.ReadIntTable(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading Tri")
	}
	t.Tri = tri

	// Read the point -> simplex index.
	vertices, err := various.ReadIntTable(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading Vertices")
	}
	t.Vertices = vertices

	// Read the adjacency.
	walk, err := various.ReadIntTable(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading Walk")
	}
	t.Walk = walk

	// Read the global edge numbers.
	edges, err := various.ReadIntTable(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading Edges")
	}
	t.Edges = edges

	return t, nil
}

// WriteSamples writes point coordinates to the given writer.
func WriteSamples(w io.Writer, samples [][]float64) error {
	return various.WriteFloatTable(w, samples)
}

// ReadSamples reads point coordinates written by WriteSamples.
func ReadSamples(r io.Reader) ([][]float64, error) {
	return various.ReadFloatTable(r)
}
