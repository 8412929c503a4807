package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hmacHasher computes keyed HMAC-SHA256 digests. HMAC instances are reused
// through a pool bound to the hasher, so two hashers with different keys
// never share state.
type hmacHasher struct {
	pool sync.Pool
}

// NewHMACHasher constructs an HMAC-SHA256 hasher keyed with hashKey.
func NewHMACHasher(hashKey string) PasswordHasher {
	key := []byte(hashKey)
	h := &hmacHasher{}
	h.pool.New = func() any {
		return hmac.New(sha256.New, key)
	}
	return h
}

// Hash implements [PasswordHasher]. The digest is 64 lowercase hex characters.
func (h *hmacHasher) Hash(password string) (string, error) {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write([]byte(password))
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return hex.EncodeToString(sum), nil
}

// Verify implements [PasswordHasher].
func (h *hmacHasher) Verify(password, digest string) (bool, error) {
	candidate, _ := h.Hash(password)
	return constantTimeEqual(candidate, digest), nil
}

// Deterministic implements [PasswordHasher].
func (h *hmacHasher) Deterministic() bool {
	return true
}
