package group

import (
	"encoding/hex"
	"fmt"

	"github.com/gtank/ristretto255"
)

const (
	ScalarBytes = 32

	// UniformBytes is the input width of the wide reductions used for
	// hash-to-scalar and hash-to-group.
	UniformBytes = 64
)

// orderMinusOneLE is q-1 for q = 2^252 + 27742317777372353535851937790883648493.
const orderMinusOneLE = "ecd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"

// Scalar is a ristretto255 scalar (canonical 32-byte little-endian encoding).
type Scalar struct {
	v ristretto255.Scalar
}

func ScalarFromUint64(x uint64) Scalar {
	// ristretto255.Scalar expects canonical little-endian encoding.
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(x >> (8 * i))
	}
	var s Scalar
	if _, err := s.v.SetCanonicalBytes(b[:]); err != nil {
		// Every uint64 is below q.
		panic(err)
	}
	return s
}

// ScalarOrderMinusOne returns q-1.
func ScalarOrderMinusOne() Scalar {
	b, err := hex.DecodeString(orderMinusOneLE)
	if err != nil {
		panic(err)
	}
	s, err := ScalarFromBytesCanonical(b)
	if err != nil {
		panic(err)
	}
	return s
}

// ScalarFromBytesCanonical parses a 32-byte little-endian scalar and rejects
// any value >= q.
func ScalarFromBytesCanonical(b []byte) (Scalar, error) {
	if len(b) != ScalarBytes {
		return Scalar{}, fmt.Errorf("scalar: expected %d bytes", ScalarBytes)
	}
	var s Scalar
	if _, err := s.v.SetCanonicalBytes(b); err != nil {
		return Scalar{}, fmt.Errorf("scalar: non-canonical: %w", err)
	}
	return s, nil
}

// ScalarFromUniformBytes reduces 64 bytes modulo q.
func ScalarFromUniformBytes(b []byte) (Scalar, error) {
	if len(b) != UniformBytes {
		return Scalar{}, fmt.Errorf("scalar: expected %d uniform bytes", UniformBytes)
	}
	var s Scalar
	if _, err := s.v.SetUniformBytes(b); err != nil {
		return Scalar{}, fmt.Errorf("scalar: %w", err)
	}
	return s, nil
}

func (s Scalar) Bytes() []byte {
	return s.v.Bytes()
}

// IsZero runs in constant time.
func (s Scalar) IsZero() bool {
	var z ristretto255.Scalar
	return s.v.Equal(&z) == 1
}

func ScalarEq(a, b Scalar) bool {
	return a.v.Equal(&b.v) == 1
}

func ScalarAdd(a, b Scalar) Scalar {
	var out Scalar
	out.v.Add(&a.v, &b.v)
	return out
}

func ScalarSub(a, b Scalar) Scalar {
	var out Scalar
	out.v.Subtract(&a.v, &b.v)
	return out
}

func ScalarMul(a, b Scalar) Scalar {
	var out Scalar
	out.v.Multiply(&a.v, &b.v)
	return out
}
