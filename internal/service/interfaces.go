package service

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

// RegistrationService accepts or rejects new accounts.
type RegistrationService interface {
	// Register validates form, hashes the password and stores the account.
	// Failures are *ValidationError, *store.ConflictError or
	// ErrRegistrationFailed.
	Register(ctx context.Context, form models.RegistrationForm) (models.Account, error)
}

// AuthService accepts or rejects login attempts.
type AuthService interface {
	// Login returns the account matching credentials. Any mismatch yields
	// ErrInvalidCredentials; a storage failure yields ErrLoginFailed.
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
