package elgamal

import (
	"crypto/rand"
	"hash"
	"io"

	errorsmod "cosmossdk.io/errors"

	"ristretto-elgamal/internal/group"
)

// PrivateKey is an ElGamal private key: a scalar x in [1, q-1].
type PrivateKey struct {
	x group.Scalar
}

// NewPrivateKey samples a private key from crypto/rand.
func NewPrivateKey() (PrivateKey, error) {
	return PrivateKeyFromRandomSource(rand.Reader)
}

// PrivateKeyFromRandomSource samples a uniform non-zero scalar from r,
// resampling while the draw is zero.
func PrivateKeyFromRandomSource(r io.Reader) (PrivateKey, error) {
	for {
		s, err := group.RandomScalar(r)
		if err != nil {
			return PrivateKey{}, randomSourceError(err)
		}
		if !s.IsZero() {
			return PrivateKey{x: s}, nil
		}
	}
}

// PrivateKeyFromHash reduces the 64-byte output of h modulo q.
//
// The result is not checked for zero; a zero key is only reachable with
// negligible probability for a real hash function.
func PrivateKeyFromHash(h hash.Hash) (PrivateKey, error) {
	d, err := digest(h)
	if err != nil {
		return PrivateKey{}, err
	}
	s, err := group.ScalarFromUniformBytes(d)
	if err != nil {
		return PrivateKey{}, errorsmod.Wrap(ErrInvalidDigest, err.Error())
	}
	return PrivateKey{x: s}, nil
}

// PrivateKeyFromScalar fails with ErrInvalidKey if s is zero.
func PrivateKeyFromScalar(s Scalar) (PrivateKey, error) {
	if s.IsZero() {
		return PrivateKey{}, errorsmod.Wrap(ErrInvalidKey, "zero scalar")
	}
	return PrivateKey{x: s.s}, nil
}

// PrivateKeyFromBytes parses a canonical little-endian scalar. Encodings of
// values >= q and the encoding of zero fail with ErrInvalidKey.
func PrivateKeyFromBytes(b [Size]byte) (PrivateKey, error) {
	s, err := group.ScalarFromBytesCanonical(b[:])
	if err != nil {
		return PrivateKey{}, errorsmod.Wrap(ErrInvalidKey, "not canonical bytes")
	}
	return PrivateKeyFromScalar(Scalar{s: s})
}

func (k PrivateKey) Bytes() [Size]byte {
	return k.Scalar().Bytes()
}

func (k PrivateKey) Scalar() Scalar {
	return Scalar{s: k.x}
}

// Public returns x*B.
func (k PrivateKey) Public() PublicKey {
	return PublicKey{point: compress(group.MulBase(k.x))}
}

// Equal runs in constant time.
func (k PrivateKey) Equal(o PrivateKey) bool {
	return group.ScalarEq(k.x, o.x)
}

func (k PrivateKey) String() string {
	return "PrivateKey{redacted}"
}
