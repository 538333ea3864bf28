package elgamal

import (
	"bytes"
	"fmt"
	"hash"

	errorsmod "cosmossdk.io/errors"

	"ristretto-elgamal/internal/group"
	"ristretto-elgamal/internal/hexutil"
)

const (
	// Size is the encoded size of a Message, PublicKey, PrivateKey or
	// CompressedPoint.
	Size = group.PointBytes

	// DigestSize is the hash output width required by the FromHash
	// constructors.
	DigestSize = group.UniformBytes
)

// CompressedPoint is the canonical 32-byte encoding of a ristretto255
// element. It is not guaranteed to decode; validity is checked where the
// point is used.
type CompressedPoint [Size]byte

func compress(p group.Point) CompressedPoint {
	return CompressedPoint(p.Compressed())
}

func (c CompressedPoint) decompress() (group.Point, error) {
	return group.PointFromBytesCanonical(c[:])
}

// IsValid reports whether c is the canonical encoding of a group element.
func (c CompressedPoint) IsValid() bool {
	_, err := c.decompress()
	return err == nil
}

func (c CompressedPoint) Bytes() [Size]byte {
	return c
}

func (c CompressedPoint) Compare(o CompressedPoint) int {
	return bytes.Compare(c[:], o[:])
}

func (c CompressedPoint) String() string {
	return hexutil.Encode(c[:])
}

// CompressedPointFromSlice copies a 32-byte slice without validating it.
func CompressedPointFromSlice(b []byte) (CompressedPoint, error) {
	var c CompressedPoint
	if len(b) != Size {
		return c, errorsmod.Wrapf(ErrInvalidEncoding, "expected %d bytes, got %d", Size, len(b))
	}
	copy(c[:], b)
	return c, nil
}

// digest finalizes h and checks that it produced DigestSize bytes.
func digest(h hash.Hash) ([]byte, error) {
	if h == nil {
		return nil, errorsmod.Wrap(ErrInvalidDigest, "nil hash")
	}
	if h.Size() != DigestSize {
		return nil, errorsmod.Wrapf(ErrInvalidDigest, "expected %d-byte output, got %d", DigestSize, h.Size())
	}
	return h.Sum(nil), nil
}

func hashToPoint(h hash.Hash) (CompressedPoint, error) {
	d, err := digest(h)
	if err != nil {
		return CompressedPoint{}, err
	}
	p, err := group.PointFromUniformBytes(d)
	if err != nil {
		return CompressedPoint{}, fmt.Errorf("hash to group: %w", err)
	}
	return compress(p), nil
}
