package various

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

var byteorder = binary.LittleEndian

// WriteFloatSlice writes a length-prefixed slice of float64 values.
func WriteFloatSlice(w io.Writer, s []float64) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, byteorder, v); err != nil {
			return err
		}
	}
	return nil
}

func ReadFloatSlice(r io.Reader) ([]float64, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, errors.Errorf("invalid slice length %d", num)
	}
	s := make([]float64, num)
	for i := 0; i < int(num); i++ {
		if err := binary.Read(r, byteorder, &s[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WriteIntSlice writes a length-prefixed slice of ints as int64 values.
func WriteIntSlice(w io.Writer, s []int) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, byteorder, int64(v)); err != nil {
			return err
		}
	}
	return nil
}

func ReadIntSlice(r io.Reader) ([]int, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, errors.Errorf("invalid slice length %d", num)
	}
	// binary.Read only handles fixed size values, so go through int64.
	s := make([]int, num)
	for i := range s {
		var v int64
		if err := binary.Read(r, byteorder, &v); err != nil {
			return nil, err
		}
		s[i] = int(v)
	}
	return s, nil
}

// WriteIntTable writes a jagged table of ints. A nil table is written with
// a length of -1 so that it reads back as nil.
func WriteIntTable(w io.Writer, t [][]int) error {
	if t == nil {
		return binary.Write(w, byteorder, int64(-1))
	}
	if err := binary.Write(w, byteorder, int64(len(t))); err != nil {
		return err
	}
	for _, row := range t {
		if err := WriteIntSlice(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ReadIntTable reads a table written by WriteIntTable.
func ReadIntTable(r io.Reader) ([][]int, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, nil
	}
	t := make([][]int, num)
	for i := range t {
		row, err := ReadIntSlice(r)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		t[i] = row
	}
	return t, nil
}

// WriteFloatTable writes a table of float slices (for example samples).
func WriteFloatTable(w io.Writer, t [][]float64) error {
	if err := binary.Write(w, byteorder, int64(len(t))); err != nil {
		return err
	}
	for _, row := range t {
		if err := WriteFloatSlice(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ReadFloatTable reads a table written by WriteFloatTable.
func ReadFloatTable(r io.Reader) ([][]float64, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, errors.Errorf("invalid table length %d", num)
	}
	t := make([][]float64, num)
	for i := range t {
		row, err := ReadFloatSlice(r)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		t[i] = row
	}
	return t, nil
}
