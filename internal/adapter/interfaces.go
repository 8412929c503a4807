// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal client register and log in against a
// remote account server instead of the embedded store.
//
// Failed responses are mapped back onto the same error values the local
// services return ([*service.ValidationError], [*store.ConflictError],
// [service.ErrInvalidCredentials]), so callers handle both modes alike.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

// AccountAdapter talks to the account HTTP surface.
type AccountAdapter interface {
	// Register submits form to POST /api/accounts/register.
	Register(ctx context.Context, form models.RegistrationForm) (models.Account, error)

	// Login submits credentials to POST /api/accounts/login.
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)

	// ServerVersion reads GET /api/version.
	ServerVersion(ctx context.Context) (string, error)
}
