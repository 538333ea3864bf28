package elgamal

import (
	"hash"
)

// PublicKey is an ElGamal public key. When derived from a PrivateKey x it is
// x*B; when built from bytes or a digest no such relation is implied.
type PublicKey struct {
	point CompressedPoint
}

// NewPublicKey derives the public key of k.
func NewPublicKey(k PrivateKey) PublicKey {
	return PublicKeyFromPrivate(k)
}

func PublicKeyFromPrivate(k PrivateKey) PublicKey {
	return k.Public()
}

// PublicKeyFromPoint wraps c verbatim; group membership is checked by Encrypt.
func PublicKeyFromPoint(c CompressedPoint) PublicKey {
	return PublicKey{point: c}
}

// PublicKeyFromHash maps the 64-byte output of h to a group element. No
// private key is known for the result.
func PublicKeyFromHash(h hash.Hash) (PublicKey, error) {
	c, err := hashToPoint(h)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{point: c}, nil
}

func PublicKeyFromBytes(b [Size]byte) PublicKey {
	return PublicKey{point: CompressedPoint(b)}
}

func (pk PublicKey) ToPoint() CompressedPoint {
	return pk.point
}

func (pk PublicKey) Bytes() [Size]byte {
	return pk.point
}

func (pk PublicKey) String() string {
	return pk.point.String()
}
