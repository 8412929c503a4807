package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

const (
	registerPath = "/api/accounts/register"
	loginPath    = "/api/accounts/login"
	versionPath  = "/api/version"
)

type httpAccountAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAccountAdapter returns an [AccountAdapter] for the server at
// cfg.HTTPAddress. It fails if the address cannot be parsed.
func NewHTTPAccountAdapter(cfg config.Adapter, logger *logger.Logger) (AccountAdapter, error) {
	client, err := utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAccountAdapter{client: client, logger: logger}, nil
}

func (h *httpAccountAdapter) Register(ctx context.Context, form models.RegistrationForm) (models.Account, error) {
	return h.postAccount(ctx, registerPath, form)
}

func (h *httpAccountAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return h.postAccount(ctx, loginPath, credentials)
}

func (h *httpAccountAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpAccountAdapter) postAccount(ctx context.Context, path string, body any) (models.Account, error) {
	var account models.AccountResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&account).
		SetError(&models.ErrorResponse{}).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("request to account server failed")
		return models.Account{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("account server rejected request")
		return models.Account{}, err
	}

	return account.Account(), nil
}
