// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential hasher: the one-way transform of a
// password into the digest stored in the users table.
//
// Three algorithms are available:
//   - "sha256": unsalted hex SHA-256. The default, compatible with digests
//     written by earlier versions of the account store.
//   - "hmac-sha256": hex HMAC-SHA256 keyed with a server secret.
//   - "argon2id": salted Argon2id in PHC string format. Not deterministic, so
//     login has to fetch the account by username and verify the digest.
package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Algorithm names accepted by NewPasswordHasher.
const (
	AlgorithmSHA256     = "sha256"
	AlgorithmHMACSHA256 = "hmac-sha256"
	AlgorithmArgon2ID   = "argon2id"
)

// NewPasswordHasher returns the PasswordHasher for algorithm. An empty
// algorithm selects AlgorithmSHA256. hashKey is only used by
// AlgorithmHMACSHA256, where it is mandatory.
func NewPasswordHasher(algorithm, hashKey string) (PasswordHasher, error) {
	switch algorithm {
	case "", AlgorithmSHA256:
		return NewSHA256Hasher(), nil
	case AlgorithmHMACSHA256:
		if hashKey == "" {
			return nil, ErrEmptyHashKey
		}
		return NewHMACHasher(hashKey), nil
	case AlgorithmArgon2ID:
		return NewArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

type sha256Hasher struct{}

// NewSHA256Hasher constructs the unsalted SHA-256 hasher.
func NewSHA256Hasher() PasswordHasher {
	return sha256Hasher{}
}

// Hash implements [PasswordHasher]. The digest is 64 lowercase hex characters.
func (sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify implements [PasswordHasher].
func (h sha256Hasher) Verify(password, digest string) (bool, error) {
	candidate, _ := h.Hash(password)
	return constantTimeEqual(candidate, digest), nil
}

// Deterministic implements [PasswordHasher].
func (sha256Hasher) Deterministic() bool {
	return true
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
