package group

import (
	"fmt"
	"io"
)

func readUniform(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("random: nil source")
	}
	buf := make([]byte, UniformBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	return buf, nil
}

// RandomScalar draws a uniform scalar in [0, q-1] from r. Zero is a possible
// output; callers that need a non-zero scalar must resample.
func RandomScalar(r io.Reader) (Scalar, error) {
	buf, err := readUniform(r)
	if err != nil {
		return Scalar{}, err
	}
	return ScalarFromUniformBytes(buf)
}

// RandomPoint draws a uniform group element from r.
func RandomPoint(r io.Reader) (Point, error) {
	buf, err := readUniform(r)
	if err != nil {
		return Point{}, err
	}
	return PointFromUniformBytes(buf)
}
