package elgamal

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// Codespace groups the elgamal sentinel errors.
const Codespace = "elgamal"

// elgamal sentinel errors.
var (
	ErrRandomSource      = errorsmod.Register(Codespace, 1, "random source failure")
	ErrInvalidKey        = errorsmod.Register(Codespace, 2, "invalid private key")
	ErrInvalidPublicKey  = errorsmod.Register(Codespace, 3, "invalid public key")
	ErrInvalidMessage    = errorsmod.Register(Codespace, 4, "invalid message")
	ErrInvalidCypherText = errorsmod.Register(Codespace, 5, "invalid cyphertext")
	ErrDegenerateKey     = errorsmod.Register(Codespace, 6, "ephemeral key equals recipient key")
	ErrInvalidDigest     = errorsmod.Register(Codespace, 7, "invalid digest")
	ErrInvalidEncoding   = errorsmod.Register(Codespace, 8, "invalid encoding")
)

// CypherText field names reported by CypherTextFieldError.
const (
	FieldGamma = "gamma"
	FieldDelta = "delta"
)

// CypherTextFieldError reports which half of a CypherText failed to
// decompress. It matches ErrInvalidCypherText under errors.Is.
type CypherTextFieldError struct {
	Field string
	Err   error
}

// randomSourceError keeps both ErrRandomSource and the reader's own error
// reachable through errors.Is.
func randomSourceError(err error) error {
	return fmt.Errorf("%w: %w", ErrRandomSource, err)
}

func (e *CypherTextFieldError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %v", ErrInvalidCypherText.Error(), e.Field, e.Err)
}

func (e *CypherTextFieldError) Unwrap() []error {
	return []error{ErrInvalidCypherText, e.Err}
}
