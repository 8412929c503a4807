package http

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/models"
)

type fakeRegistrationService struct {
	registerFn func(ctx context.Context, form models.RegistrationForm) (models.Account, error)
}

func (f *fakeRegistrationService) Register(ctx context.Context, form models.RegistrationForm) (models.Account, error) {
	return f.registerFn(ctx, form)
}

type fakeAuthService struct {
	loginFn func(ctx context.Context, credentials models.Credentials) (models.Account, error)
}

func (f *fakeAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return f.loginFn(ctx, credentials)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

func newTestHandler(reg service.RegistrationService, auth service.AuthService) *Handler {
	return NewHandler(&service.Services{
		RegistrationService: reg,
		AuthService:         auth,
		AppInfoService:      &fakeAppInfoService{version: "1.0.0"},
	}, logger.Nop())
}

func ada() models.Account {
	return models.Account{
		ID:        1,
		Username:  "ada_l",
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}
