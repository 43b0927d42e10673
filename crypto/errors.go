package crypto

import "errors"

var (
	// ErrInvalidKey is returned when a key fails a cipher's precondition.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMalformedInput is reserved for input the ciphers refuse to process.
	// Empty text is currently accepted by every cipher.
	ErrMalformedInput = errors.New("malformed input")
)
