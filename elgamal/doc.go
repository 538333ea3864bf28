// Package elgamal implements ElGamal encryption over the ristretto255 group.
//
// Keys and messages are small immutable values:
//
//   - Message: a compressed group element carrying the plaintext
//   - PrivateKey: a non-zero scalar x
//   - PublicKey: a compressed group element, x*B when derived from x
//   - KeyPair: a PrivateKey with its derived PublicKey
//   - CypherText: the pair (Gamma, Delta)
//
// Encrypt(m, Y, r) returns (r*B, m + r*Y). Decrypt unmasks with the exponent
// q-1-x, so for Y = x*B it returns m + r*(2x+1)*B instead of m. Consumers
// that need Decrypt(Encrypt(m)) == m must not rely on this package as is.
//
// Randomness is taken from an io.Reader. The plain constructors use
// crypto/rand; the FromRandomSource variants accept any source, which lets
// tests run deterministically. The FromHash constructors take a hash.Hash
// with a 64-byte output (SHA-512, BLAKE2b-512, SHA3-512) and derive their
// value from its current digest.
//
// Nothing in this package logs, retries or keeps state between calls.
package elgamal
