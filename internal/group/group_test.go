package group

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex %q: %v", s, err)
	}
	return b
}

// Multiples of the generator from the ristretto255 test vectors.
var generatorMultiples = []string{
	"0000000000000000000000000000000000000000000000000000000000000000",
	"e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76",
	"6a493210f7499cd17fecb510ae0cea23a110e8d5b901f8acadd3095c73a3b919",
}

func TestMulBase_GeneratorMultiples(t *testing.T) {
	for i, want := range generatorMultiples {
		got := MulBase(ScalarFromUint64(uint64(i)))
		if !bytes.Equal(got.Bytes(), mustHex(t, want)) {
			t.Fatalf("%d*B mismatch: got=%x want=%s", i, got.Bytes(), want)
		}
	}
	if !PointEq(PointBase(), MulBase(ScalarFromUint64(1))) {
		t.Fatalf("PointBase != 1*B")
	}
	if !bytes.Equal(MulBase(Scalar{}).Bytes(), make([]byte, PointBytes)) {
		t.Fatalf("0*B is not the identity encoding")
	}
}

func TestPointFromBytesCanonical_RejectsBadEncodings(t *testing.T) {
	bad := []string{
		// non-canonical field element
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		// negative field element
		"0100000000000000000000000000000000000000000000000000000000000000",
	}
	for _, h := range bad {
		if _, err := PointFromBytesCanonical(mustHex(t, h)); err == nil {
			t.Fatalf("expected %s to be rejected", h)
		}
	}
	if _, err := PointFromBytesCanonical(make([]byte, 31)); err == nil {
		t.Fatalf("expected short input to be rejected")
	}
	for _, h := range generatorMultiples {
		if _, err := PointFromBytesCanonical(mustHex(t, h)); err != nil {
			t.Fatalf("valid encoding %s rejected: %v", h, err)
		}
	}
}

func TestScalarFromBytesCanonical_RejectsOrder(t *testing.T) {
	order := mustHex(t, "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	if _, err := ScalarFromBytesCanonical(order); err == nil {
		t.Fatalf("expected q to be rejected")
	}
	all := bytes.Repeat([]byte{0xff}, ScalarBytes)
	if _, err := ScalarFromBytesCanonical(all); err == nil {
		t.Fatalf("expected 2^256-1 to be rejected")
	}
	if _, err := ScalarFromBytesCanonical(mustHex(t, orderMinusOneLE)); err != nil {
		t.Fatalf("q-1 rejected: %v", err)
	}
}

func TestScalarOrderMinusOne_IsNegativeOne(t *testing.T) {
	got := ScalarOrderMinusOne()
	want := ScalarSub(Scalar{}, ScalarFromUint64(1))
	if !ScalarEq(got, want) {
		t.Fatalf("q-1 mismatch: got=%x want=%x", got.Bytes(), want.Bytes())
	}
	if !ScalarAdd(got, ScalarFromUint64(1)).IsZero() {
		t.Fatalf("(q-1)+1 should be zero")
	}
}

func TestScalarArithmetic(t *testing.T) {
	a := ScalarFromUint64(7)
	b := ScalarFromUint64(5)
	if !ScalarEq(ScalarSub(a, b), ScalarFromUint64(2)) {
		t.Fatalf("7-5 != 2")
	}
	if !ScalarEq(ScalarMul(a, b), ScalarFromUint64(35)) {
		t.Fatalf("7*5 != 35")
	}
	if !PointEq(MulBase(ScalarAdd(a, b)), PointAdd(MulBase(a), MulBase(b))) {
		t.Fatalf("(a+b)B != aB + bB")
	}
	if !PointEq(MulPoint(MulBase(a), b), MulBase(ScalarMul(a, b))) {
		t.Fatalf("b(aB) != (ab)B")
	}
	if !PointEq(PointSub(MulBase(a), MulBase(b)), MulBase(ScalarSub(a, b))) {
		t.Fatalf("aB - bB != (a-b)B")
	}
}

func TestFromUniformBytes_Deterministic(t *testing.T) {
	d1 := sha512.Sum512([]byte("one"))
	d2 := sha512.Sum512([]byte("two"))

	p1, err := PointFromUniformBytes(d1[:])
	if err != nil {
		t.Fatalf("point: %v", err)
	}
	p1b, _ := PointFromUniformBytes(d1[:])
	p2, _ := PointFromUniformBytes(d2[:])
	if !PointEq(p1, p1b) {
		t.Fatalf("hash-to-group not deterministic")
	}
	if PointEq(p1, p2) {
		t.Fatalf("distinct digests mapped to the same point")
	}

	s1, err := ScalarFromUniformBytes(d1[:])
	if err != nil {
		t.Fatalf("scalar: %v", err)
	}
	s1b, _ := ScalarFromUniformBytes(d1[:])
	if !ScalarEq(s1, s1b) {
		t.Fatalf("wide reduction not deterministic")
	}

	if _, err := PointFromUniformBytes(d1[:32]); err == nil {
		t.Fatalf("expected short uniform input to be rejected")
	}
	if _, err := ScalarFromUniformBytes(d1[:32]); err == nil {
		t.Fatalf("expected short uniform input to be rejected")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestRandom_PropagatesSourceFailure(t *testing.T) {
	if _, err := RandomScalar(failingReader{}); err == nil {
		t.Fatalf("expected scalar error")
	}
	if _, err := RandomPoint(bytes.NewReader(make([]byte, 10))); err == nil {
		t.Fatalf("expected short read error")
	}
	if _, err := RandomPoint(nil); err == nil {
		t.Fatalf("expected nil source error")
	}
}

func TestCompressed_MatchesBytes(t *testing.T) {
	p := MulBase(ScalarFromUint64(2))
	c := p.Compressed()
	if !bytes.Equal(c[:], p.Bytes()) {
		t.Fatalf("compressed mismatch")
	}
}
