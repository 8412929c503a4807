package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns a plaintext password into the digest stored with an
// account and checks login attempts against it. Digests are never decrypted:
// a candidate password is re-hashed and the results are compared.
type PasswordHasher interface {
	// Hash returns the digest to persist for password.
	Hash(password string) (string, error)

	// Verify reports whether password produces digest. A malformed digest
	// yields an error; a mismatch yields (false, nil).
	Verify(password, digest string) (bool, error)

	// Deterministic reports whether Hash always returns the same digest for
	// the same password. Only deterministic digests can be used as a lookup
	// key in the account store.
	Deterministic() bool
}
