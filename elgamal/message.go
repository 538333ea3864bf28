package elgamal

import (
	"crypto/rand"
	"hash"
	"io"

	"ristretto-elgamal/internal/group"
)

// Message is an ElGamal plaintext: the compressed encoding of a group element.
// Equality and ordering are bytewise.
type Message struct {
	point CompressedPoint
}

// NewMessage wraps b verbatim. It is not checked to be a valid encoding until
// it is passed to Encrypt.
func NewMessage(b [Size]byte) Message {
	return Message{point: CompressedPoint(b)}
}

// RandomMessage returns a uniformly random group element drawn from
// crypto/rand.
func RandomMessage() (Message, error) {
	return MessageFromRandomSource(rand.Reader)
}

// MessageFromRandomSource returns a uniformly random group element drawn from
// r, which must be a cryptographically secure source.
func MessageFromRandomSource(r io.Reader) (Message, error) {
	p, err := group.RandomPoint(r)
	if err != nil {
		return Message{}, randomSourceError(err)
	}
	return MessageFromPoint(compress(p)), nil
}

// MessageFromHash maps the 64-byte output of h to a group element.
func MessageFromHash(h hash.Hash) (Message, error) {
	c, err := hashToPoint(h)
	if err != nil {
		return Message{}, err
	}
	return MessageFromPoint(c), nil
}

func MessageFromPoint(c CompressedPoint) Message {
	return Message{point: c}
}

func (m Message) ToPoint() CompressedPoint {
	return m.point
}

func (m Message) Bytes() [Size]byte {
	return m.point
}

func (m Message) Compare(o Message) int {
	return m.point.Compare(o.point)
}

func (m Message) String() string {
	return m.point.String()
}
