package elgamal

import (
	errorsmod "cosmossdk.io/errors"

	"ristretto-elgamal/internal/group"
)

// Scalar is an integer modulo the ristretto255 group order q.
type Scalar struct {
	s group.Scalar
}

func ScalarFromUint64(x uint64) Scalar {
	return Scalar{s: group.ScalarFromUint64(x)}
}

// ScalarFromCanonicalBytes parses a little-endian encoding and rejects values
// >= q.
func ScalarFromCanonicalBytes(b [Size]byte) (Scalar, error) {
	s, err := group.ScalarFromBytesCanonical(b[:])
	if err != nil {
		return Scalar{}, errorsmod.Wrap(ErrInvalidEncoding, err.Error())
	}
	return Scalar{s: s}, nil
}

// ScalarFromUniformBytes reduces 64 bytes modulo q.
func ScalarFromUniformBytes(b [DigestSize]byte) Scalar {
	s, err := group.ScalarFromUniformBytes(b[:])
	if err != nil {
		// Length is fixed by the array type.
		panic(err)
	}
	return Scalar{s: s}
}

func (s Scalar) Bytes() [Size]byte {
	var out [Size]byte
	copy(out[:], s.s.Bytes())
	return out
}

// IsZero runs in constant time.
func (s Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Equal runs in constant time.
func (s Scalar) Equal(o Scalar) bool {
	return group.ScalarEq(s.s, o.s)
}
