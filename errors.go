package narrowway

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key does not match the variant's key size.
	ErrInvalidKeyLength = errors.New("narrowway: invalid key length")

	// ErrInvalidBlockLength is returned when an input or output block does not
	// match the variant's block size.
	ErrInvalidBlockLength = errors.New("narrowway: invalid block length")

	// ErrNilCipher is returned when attempting to use a nil cipher instance.
	ErrNilCipher = errors.New("narrowway: cipher instance is nil")

	// ErrUnknownVariant is returned for a variant tag other than 256, 384 or 512.
	ErrUnknownVariant = errors.New("narrowway: unknown variant")
)
