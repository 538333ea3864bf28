// Package detrand provides a reproducible byte stream for tests and seeded
// key derivation. It is NOT a substitute for crypto/rand: the output is fully
// determined by the seed.
package detrand

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
)

var prefix = []byte("ristretto-elgamal|detrand|")

// Reader expands a seed into a stream of sha512(prefix || len(domain) ||
// domain || len(seed) || seed || counter) blocks.
type Reader struct {
	state   []byte
	counter uint64
	buf     [sha512.Size]byte
	bufPos  int
}

// New returns a Reader bound to a domain separator and seed.
func New(domain string, seed []byte) (*Reader, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("detrand: empty seed")
	}
	st := make([]byte, 0, len(prefix)+4+len(domain)+4+len(seed))
	st = append(st, prefix...)
	st = binary.LittleEndian.AppendUint32(st, uint32(len(domain)))
	st = append(st, domain...)
	st = binary.LittleEndian.AppendUint32(st, uint32(len(seed)))
	st = append(st, seed...)
	return &Reader{state: st, bufPos: sha512.Size}, nil
}

// Read always fills p completely and never fails.
func (r *Reader) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if r.bufPos >= len(r.buf) {
			r.refill()
		}
		c := copy(p, r.buf[r.bufPos:])
		r.bufPos += c
		p = p[c:]
	}
	return n, nil
}

func (r *Reader) refill() {
	h := sha512.New()
	h.Write(r.state)
	var c [8]byte
	binary.LittleEndian.PutUint64(c[:], r.counter)
	h.Write(c[:])
	r.counter++
	h.Sum(r.buf[:0])
	r.bufPos = 0
}
