package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	accountRepository store.AccountRepository
	hasher            crypto.PasswordHasher
	logger            *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hasher:            hasher,
		logger:            logger,
	}
}

// Login authenticates an existing account.
//
// With a deterministic hasher the supplied password is hashed and matched
// together with the username in one store lookup. Otherwise the account is
// fetched by username and the stored digest is verified.
//
// Returns the account or:
//   - ErrInvalidCredentials for an empty field, an unknown username or a
//     wrong password alike.
//   - ErrLoginFailed if hashing or the store fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*authService.Login").
		Str("username", credentials.Username).
		Logger()

	if credentials.Username == "" || credentials.Password == "" {
		log.Info().Msg("empty credentials provided")
		return models.Account{}, ErrInvalidCredentials
	}

	var (
		account models.Account
		err     error
	)
	if a.hasher.Deterministic() {
		account, err = a.loginByDigest(ctx, credentials)
	} else {
		account, err = a.loginByVerify(ctx, credentials)
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		log.Info().Msg("invalid credentials")
		return models.Account{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("login failed")
		return models.Account{}, ErrLoginFailed
	}

	log.Info().Int64("account_id", account.ID).Msg("user logged in")
	return account, nil
}

func (a *authService) loginByDigest(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	digest, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		return models.Account{}, err
	}

	account, err := a.accountRepository.FindByCredentials(ctx, credentials.Username, digest)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrInvalidCredentials
	}

	return account, err
}

func (a *authService) loginByVerify(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	account, err := a.accountRepository.FindByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Account{}, err
	}

	ok, err := a.hasher.Verify(credentials.Password, account.PasswordDigest)
	if err != nil {
		return models.Account{}, err
	}
	if !ok {
		return models.Account{}, ErrInvalidCredentials
	}

	return account, nil
}
