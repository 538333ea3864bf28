package elgamal

import (
	"crypto/subtle"

	errorsmod "cosmossdk.io/errors"

	"ristretto-elgamal/internal/group"
	"ristretto-elgamal/internal/hexutil"
)

// CypherTextSize is the encoded size of a CypherText: Gamma || Delta.
const CypherTextSize = 2 * Size

// CypherText is the output of Encrypt. Gamma is the ephemeral public key and
// Delta is the masked message.
type CypherText struct {
	Gamma CompressedPoint
	Delta CompressedPoint
}

// Encrypt computes (sk*B, msg + sk*pk).
//
// sk is the ephemeral key. It must be non-zero and must not be the private
// key behind pk. The zero value PrivateKey{} is rejected with ErrInvalidKey.
func Encrypt(msg Message, pk PublicKey, sk PrivateKey) (CypherText, error) {
	ephemeral := sk.Public()
	if subtle.ConstantTimeCompare(ephemeral.point[:], pk.point[:]) == 1 {
		return CypherText{}, ErrDegenerateKey
	}
	// A zero ephemeral key leaks the plaintext: gamma is the identity and
	// delta is msg.
	if sk.x.IsZero() {
		return CypherText{}, errorsmod.Wrap(ErrInvalidKey, "zero ephemeral key")
	}

	pkPoint, err := pk.point.decompress()
	if err != nil {
		return CypherText{}, errorsmod.Wrap(ErrInvalidPublicKey, err.Error())
	}
	msgPoint, err := msg.point.decompress()
	if err != nil {
		return CypherText{}, errorsmod.Wrap(ErrInvalidMessage, err.Error())
	}

	shared := group.MulPoint(pkPoint, sk.x)
	gamma := group.MulBase(sk.x)
	delta := group.PointAdd(msgPoint, shared)

	return CypherText{Gamma: compress(gamma), Delta: compress(delta)}, nil
}

// Decrypt computes Delta - Gamma*(q-1-x).
//
// The unmasking exponent is q-1-x, not -x. Decrypt(Encrypt(m, x*B, r), x)
// therefore yields m + r*(2x+1)*B rather than m; see the package docs.
func Decrypt(ct CypherText, sk PrivateKey) (Message, error) {
	if sk.x.IsZero() {
		return Message{}, errorsmod.Wrap(ErrInvalidKey, "zero private key")
	}
	gamma, err := ct.Gamma.decompress()
	if err != nil {
		return Message{}, &CypherTextFieldError{Field: FieldGamma, Err: err}
	}
	delta, err := ct.Delta.decompress()
	if err != nil {
		return Message{}, &CypherTextFieldError{Field: FieldDelta, Err: err}
	}

	unmask := group.ScalarSub(group.ScalarOrderMinusOne(), sk.x)
	m := group.PointSub(delta, group.MulPoint(gamma, unmask))

	return MessageFromPoint(compress(m)), nil
}

// Bytes returns Gamma || Delta.
func (ct CypherText) Bytes() [CypherTextSize]byte {
	var out [CypherTextSize]byte
	copy(out[:Size], ct.Gamma[:])
	copy(out[Size:], ct.Delta[:])
	return out
}

func (ct CypherText) String() string {
	b := ct.Bytes()
	return hexutil.Encode(b[:])
}

// CypherTextFromBytes splits b into Gamma and Delta without validating them;
// Decrypt reports invalid halves.
func CypherTextFromBytes(b [CypherTextSize]byte) CypherText {
	var ct CypherText
	copy(ct.Gamma[:], b[:Size])
	copy(ct.Delta[:], b[Size:])
	return ct
}

func CypherTextFromSlice(b []byte) (CypherText, error) {
	if len(b) != CypherTextSize {
		return CypherText{}, errorsmod.Wrapf(ErrInvalidEncoding, "cyphertext: expected %d bytes, got %d", CypherTextSize, len(b))
	}
	return CypherTextFromBytes([CypherTextSize]byte(b)), nil
}
