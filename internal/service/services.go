package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
)

// Services groups the services built on one set of storages.
type Services struct {
	RegistrationService RegistrationService
	AuthService         AuthService
	AppInfoService      AppInfoService
}

// NewServices wires the services to storages. The password hasher and the
// account validator are built from cfg.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger, opts ...Option) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.PasswordHashAlgorithm, cfg.PasswordHashKey)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewAccountValidator(cfg.MaxUsernameLength)

	return &Services{
		RegistrationService: NewRegistrationService(storages.AccountRepository, validator, hasher, logger, opts...),
		AuthService:         NewAuthService(storages.AccountRepository, hasher, logger),
		AppInfoService:      appInfoService,
	}, nil
}

// Option customizes service construction.
type Option func(*options)

type options struct {
	clock func() time.Time
}

func newOptions(opts ...Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces time.Now as the source of account creation times.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}
