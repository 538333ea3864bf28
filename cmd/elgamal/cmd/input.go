package cmd

import (
	"crypto/sha512"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"ristretto-elgamal/elgamal"
	"ristretto-elgamal/internal/detrand"
	"ristretto-elgamal/internal/hexutil"
	"ristretto-elgamal/internal/params"
)

const (
	flagSeed      = "seed"
	flagHashInput = "hash-input"
)

// digestOf returns the named 64-byte hash after absorbing data.
func digestOf(name string, data []byte) (hash.Hash, error) {
	var h hash.Hash
	switch name {
	case "sha512":
		h = sha512.New()
	case "blake2b":
		var err error
		if h, err = blake2b.New512(nil); err != nil {
			return nil, err
		}
	case "sha3":
		h = sha3.New512()
	default:
		return nil, fmt.Errorf("unknown hash %q (sha512|blake2b|sha3)", name)
	}
	h.Write(data)
	return h, nil
}

func seededSource(seed string) (io.Reader, error) {
	return detrand.New(params.SeedDomain, []byte(seed))
}

func decodeArray(flag, s string) ([elgamal.Size]byte, error) {
	b, err := hexutil.DecodeFixed(s, elgamal.Size)
	if err != nil {
		return [elgamal.Size]byte{}, fmt.Errorf("--%s: %w", flag, err)
	}
	return [elgamal.Size]byte(b), nil
}

func decodePrivateKey(flag, s string) (elgamal.PrivateKey, error) {
	b, err := decodeArray(flag, s)
	if err != nil {
		return elgamal.PrivateKey{}, err
	}
	return elgamal.PrivateKeyFromBytes(b)
}
