// Package hexutil converts between byte strings and 0x-prefixed lowercase hex.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("hex: empty string")
	}
	ss := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if ss == "" {
		return nil, fmt.Errorf("hex: no digits")
	}
	if len(ss)%2 != 0 {
		return nil, fmt.Errorf("hex: odd length")
	}
	b, err := hex.DecodeString(ss)
	if err != nil {
		return nil, fmt.Errorf("hex: %w", err)
	}
	return b, nil
}

// DecodeFixed decodes s and checks that it is exactly n bytes long.
func DecodeFixed(s string, n int) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("hex: expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}

func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
