// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account represents a registered identity stored in the local account store.
// It is created once by a successful registration and never modified
// afterwards.
type Account struct {
	// ID is the store-assigned identifier. It grows monotonically.
	ID int64 `json:"id"`

	// Username is the unique login name, 3..N characters of [A-Za-z0-9_].
	Username string `json:"username"`

	// Email is the unique e-mail address of the account owner.
	Email string `json:"email"`

	// PasswordDigest is the one-way digest of the password.
	// It is never serialized and must never be logged.
	PasswordDigest string `json:"-"`

	// FirstName is the given name shown in the UI.
	FirstName string `json:"first_name"`

	// LastName is the family name shown in the UI.
	LastName string `json:"last_name"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns "FirstName LastName".
func (a Account) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "users"
}

// RegistrationForm holds the raw values a caller submits to register a new
// account. Password and ConfirmPassword are plaintext and must never be logged
// or persisted.
type RegistrationForm struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Credentials holds a login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
