package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks codec construction failures caused by configuration.
	// Callers treat it as fatal at startup.
	ErrConfig = errors.New("crypto: invalid codec configuration")

	// ErrInvalidKeyLength is returned when the key or IV is not exactly
	// 16 bytes. It wraps ErrConfig.
	ErrInvalidKeyLength = fmt.Errorf("%w: key and IV must be exactly %d bytes", ErrConfig, KeySize)

	// ErrDecryption is returned for ciphertexts that cannot be decoded with
	// the configured key pair (corrupted storage, rotated keys).
	ErrDecryption = errors.New("crypto: decryption failed")
)
