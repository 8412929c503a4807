package crypto

import "errors"

var (
	// ErrUnknownAlgorithm is returned by NewPasswordHasher for an unsupported
	// algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown password hash algorithm")

	// ErrEmptyHashKey is returned when hmac-sha256 is selected without a key.
	ErrEmptyHashKey = errors.New("password hash key is required for hmac-sha256")

	// ErrMalformedDigest is returned by Verify when a stored digest cannot be
	// parsed.
	ErrMalformedDigest = errors.New("malformed password digest")
)
