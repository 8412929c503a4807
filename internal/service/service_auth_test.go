package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

func adaAccount() models.Account {
	return models.Account{
		ID:             1,
		Username:       "ada_l",
		Email:          "ada@example.com",
		PasswordDigest: "digest",
		FirstName:      "Ada",
		LastName:       "Lovelace",
	}
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockAccountRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockAccountRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewAuthService(repo, hasher, logger.Nop()), repo, hasher
}

// ── deterministic hasher ─────────────────────────────────────────────────────

func TestAuthService_Login_ByDigest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Deterministic().Return(true)
	hasher.EXPECT().Hash("Passw0rd").Return("digest", nil)
	repo.EXPECT().FindByCredentials(ctx, "ada_l", "digest").Return(adaAccount(), nil)

	account, err := svc.Login(ctx, models.Credentials{Username: "ada_l", Password: "Passw0rd"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", account.DisplayName())
}

func TestAuthService_Login_ByDigest_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Deterministic().Return(true)
	hasher.EXPECT().Hash("wrong").Return("other", nil)
	repo.EXPECT().FindByCredentials(gomock.Any(), "ada_l", "other").Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ada_l", Password: "wrong"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_Login_ByDigest_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Deterministic().Return(true)
	hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
	repo.EXPECT().FindByCredentials(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Account{}, errors.New("database is locked"))

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ada_l", Password: "Passw0rd"})
	assert.Equal(t, ErrLoginFailed, err)
}

// ── non-deterministic hasher ─────────────────────────────────────────────────

func TestAuthService_Login_ByVerify(t *testing.T) {
	tests := []struct {
		name      string
		findErr   error
		verifyOK  bool
		verifyErr error
		wantErr   error
	}{
		{name: "success", verifyOK: true},
		{name: "wrong password", verifyOK: false, wantErr: ErrInvalidCredentials},
		{name: "unknown user", findErr: store.ErrAccountNotFound, wantErr: ErrInvalidCredentials},
		{name: "store failure", findErr: errors.New("boom"), wantErr: ErrLoginFailed},
		{name: "malformed digest", verifyErr: errors.New("malformed"), wantErr: ErrLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestAuthSvc(t, ctrl)

			hasher.EXPECT().Deterministic().Return(false)
			if tt.findErr != nil {
				repo.EXPECT().FindByUsername(gomock.Any(), "ada_l").Return(models.Account{}, tt.findErr)
			} else {
				repo.EXPECT().FindByUsername(gomock.Any(), "ada_l").Return(adaAccount(), nil)
				hasher.EXPECT().Verify("Passw0rd", "digest").Return(tt.verifyOK, tt.verifyErr)
			}

			account, err := svc.Login(context.Background(), models.Credentials{Username: "ada_l", Password: "Passw0rd"})
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Equal(t, models.Account{}, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), account.ID)
		})
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl) // no store or hasher call expected

	for _, c := range []models.Credentials{
		{},
		{Username: "ada_l"},
		{Password: "Passw0rd"},
	} {
		_, err := svc.Login(context.Background(), c)
		assert.Equal(t, ErrInvalidCredentials, err)
	}
}
