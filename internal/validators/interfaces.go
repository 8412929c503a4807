// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules an account must satisfy before it
// reaches the store: e-mail syntax, username shape, password strength and the
// registration form as a whole.
//
// The single-value checks (ValidateEmail, ValidateUsername, ValidatePassword)
// are pure functions over any string. AccountValidator composes them in the
// order the registration flow requires and supports field-level scoping.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
