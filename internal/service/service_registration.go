package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/MKhiriev/go-account-keeper/models"
)

// registrationService is the concrete implementation of RegistrationService.
type registrationService struct {
	accountRepository store.AccountRepository
	validator         validators.Validator
	hasher            crypto.PasswordHasher
	now               func() time.Time
	logger            *logger.Logger
}

// NewRegistrationService constructs a RegistrationService. The returned
// service holds no mutable state and is safe for concurrent use.
func NewRegistrationService(
	accountRepository store.AccountRepository,
	validator validators.Validator,
	hasher crypto.PasswordHasher,
	logger *logger.Logger,
	opts ...Option,
) RegistrationService {
	o := newOptions(opts...)

	return &registrationService{
		accountRepository: accountRepository,
		validator:         validator,
		hasher:            hasher,
		now:               o.clock,
		logger:            logger,
	}
}

// Register checks form in order: required fields, name length, email,
// username, password strength, password confirmation. The first failure is
// returned as *ValidationError and nothing is written.
//
// A valid form is hashed and stored. A uniqueness violation is returned as
// the *store.ConflictError from the repository; any other failure becomes
// ErrRegistrationFailed.
func (s *registrationService) Register(ctx context.Context, form models.RegistrationForm) (models.Account, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*registrationService.Register").
		Str("username", form.Username).
		Str("email", form.Email).
		Logger()

	if err := s.validator.Validate(ctx, form); err != nil {
		log.Info().Str("reason", err.Error()).Msg("registration rejected")
		return models.Account{}, &ValidationError{Reason: err.Error(), Err: err}
	}

	digest, err := s.hasher.Hash(form.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.Account{}, ErrRegistrationFailed
	}

	account, err := s.accountRepository.CreateAccount(ctx, models.Account{
		Username:       form.Username,
		Email:          form.Email,
		PasswordDigest: digest,
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		CreatedAt:      s.now().UTC(),
	})
	if err != nil {
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			log.Info().Str("field", string(conflict.Field)).Msg("registration conflicts with existing account")
			return models.Account{}, conflict
		}

		log.Err(err).Msg("error storing account")
		return models.Account{}, ErrRegistrationFailed
	}

	log.Info().Int64("account_id", account.ID).Msg("account registered")
	return account, nil
}
