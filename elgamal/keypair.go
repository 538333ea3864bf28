package elgamal

import (
	"hash"
	"io"
)

// KeyPair holds a PrivateKey and the PublicKey derived from it. Every
// constructor recomputes the public half.
type KeyPair struct {
	PublicKey  PublicKey
	PrivateKey PrivateKey
}

func newKeyPair(sk PrivateKey) KeyPair {
	return KeyPair{PublicKey: sk.Public(), PrivateKey: sk}
}

// NewKeyPair generates a key pair from crypto/rand.
func NewKeyPair() (KeyPair, error) {
	sk, err := NewPrivateKey()
	if err != nil {
		return KeyPair{}, err
	}
	return newKeyPair(sk), nil
}

func KeyPairFromRandomSource(r io.Reader) (KeyPair, error) {
	sk, err := PrivateKeyFromRandomSource(r)
	if err != nil {
		return KeyPair{}, err
	}
	return newKeyPair(sk), nil
}

func KeyPairFromHash(h hash.Hash) (KeyPair, error) {
	sk, err := PrivateKeyFromHash(h)
	if err != nil {
		return KeyPair{}, err
	}
	return newKeyPair(sk), nil
}

func KeyPairFromScalar(s Scalar) (KeyPair, error) {
	sk, err := PrivateKeyFromScalar(s)
	if err != nil {
		return KeyPair{}, err
	}
	return newKeyPair(sk), nil
}

func KeyPairFromBytes(b [Size]byte) (KeyPair, error) {
	sk, err := PrivateKeyFromBytes(b)
	if err != nil {
		return KeyPair{}, err
	}
	return newKeyPair(sk), nil
}
