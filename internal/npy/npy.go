// Package npy reads and writes one-dimensional float32 embedding vectors in the NumPy .npy format.
package npy

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/sbinet/npyio"
)

var magic = []byte("\x93NUMPY")

var (
	ErrBadMagic    = errors.New("npy: bad magic")
	ErrUnsupported = errors.New("npy: unsupported array")
)

// Encode serializes v as a little-endian float32 vector.
func Encode(v []float32) ([]byte, error) {
	if v == nil {
		v = []float32{}
	}
	var buf bytes.Buffer
	if err := npyio.Write(&buf, v); err != nil {
		return nil, fmt.Errorf("npy: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a float32 or float64 vector. Multi-dimensional arrays are flattened
// in C order; Fortran order is rejected.
func Decode(data []byte) ([]float32, error) {
	if len(data) < 10 || !bytes.Equal(data[:6], magic) {
		return nil, ErrBadMagic
	}

	r, err := npyio.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	descr := r.Header.Descr
	if descr.Fortran {
		return nil, fmt.Errorf("%w: fortran order", ErrUnsupported)
	}

	var size int
	switch {
	case strings.HasSuffix(descr.Type, "f4"):
		size = 4
	case strings.HasSuffix(descr.Type, "f8"):
		size = 8
	default:
		return nil, fmt.Errorf("%w: dtype %s", ErrUnsupported, descr.Type)
	}

	if _, err := elementCount(descr.Shape, len(data)/size); err != nil {
		return nil, err
	}

	if size == 4 {
		var out []float32
		if err := r.Read(&out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		return out, nil
	}

	var wide []float64
	if err := r.Read(&wide); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	out := make([]float32, len(wide))
	for i, f := range wide {
		out[i] = float32(f)
	}
	return out, nil
}

// elementCount multiplies the shape out, refusing any shape that could not fit
// in limit elements.
func elementCount(shape []int, limit int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 || (d > 0 && n > limit/d) {
			return 0, fmt.Errorf("%w: shape %v exceeds data", ErrUnsupported, shape)
		}
		n *= d
	}
	if n > limit {
		return 0, fmt.Errorf("%w: shape %v exceeds data", ErrUnsupported, shape)
	}
	return n, nil
}
