// Package group is the only place that touches ristretto255 directly.
//
// It exposes value wrappers for group elements and scalars together with the
// handful of operations ElGamal needs: canonical (de)compression, fixed-base
// and variable-base scalar multiplication, wide reduction of 64-byte inputs
// and hash-to-group.
package group
