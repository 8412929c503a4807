// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) AccountAdapter {
	t.Helper()
	a, err := NewHTTPAccountAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func adaForm() models.RegistrationForm {
	return models.RegistrationForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Username:        "ada_l",
		Email:           "ada@example.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
	}
}

func adaResponse() models.AccountResponse {
	return models.NewAccountResponse(models.Account{
		ID:        3,
		Username:  "ada_l",
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
}

func replyWith(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, body, status)
	}
}

func TestNewHTTPAccountAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPAccountAdapter(config.Adapter{HTTPAddress: "   "}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, a)
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, registerPath, r.URL.Path)

		var form models.RegistrationForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, adaForm(), form)

		_, _ = utils.WriteJSON(w, adaResponse(), http.StatusCreated)
	}))
	defer srv.Close()

	account, err := newTestAdapter(t, srv.URL).Register(context.Background(), adaForm())

	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
	assert.Equal(t, "Ada Lovelace", account.DisplayName())
	assert.Empty(t, account.PasswordDigest)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   models.ErrorResponse
		check  func(t *testing.T, err error)
	}{
		{
			name:   "validation",
			status: http.StatusBadRequest,
			body:   models.ErrorResponse{Kind: models.ErrorKindValidation, Message: "passwords do not match"},
			check: func(t *testing.T, err error) {
				var vErr *service.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "passwords do not match", vErr.Reason)
				assert.ErrorIs(t, err, ErrRejectedByServer)
			},
		},
		{
			name:   "username conflict",
			status: http.StatusConflict,
			body:   models.ErrorResponse{Kind: models.ErrorKindConflict, Field: "username", Message: "username already exists"},
			check: func(t *testing.T, err error) {
				var cErr *store.ConflictError
				require.ErrorAs(t, err, &cErr)
				assert.Equal(t, store.ConflictUsername, cErr.Field)
			},
		},
		{
			name:   "conflict with unknown field",
			status: http.StatusConflict,
			body:   models.ErrorResponse{Kind: models.ErrorKindConflict, Field: "phone"},
			check: func(t *testing.T, err error) {
				var cErr *store.ConflictError
				require.ErrorAs(t, err, &cErr)
				assert.Equal(t, store.ConflictUnknown, cErr.Field)
			},
		},
		{
			name:   "internal",
			status: http.StatusInternalServerError,
			body:   models.ErrorResponse{Kind: models.ErrorKindInternal, Message: "registration failed, please try again later"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrServerFailure)
				assert.Contains(t, err.Error(), "registration failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(replyWith(tt.status, tt.body))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Register(context.Background(), adaForm())

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestRegister_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), adaForm())

	require.ErrorIs(t, err, ErrUnexpectedResponse)
	assert.Contains(t, err.Error(), "http 404")
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, loginPath, r.URL.Path)

			var c models.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
			assert.Equal(t, models.Credentials{Username: "ada_l", Password: "Passw0rd"}, c)

			_, _ = utils.WriteJSON(w, adaResponse(), http.StatusOK)
		}))
		defer srv.Close()

		account, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "ada_l", Password: "Passw0rd"})

		require.NoError(t, err)
		assert.Equal(t, "ada_l", account.Username)
		assert.Equal(t, "Ada Lovelace", account.DisplayName())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		srv := httptest.NewServer(replyWith(http.StatusUnauthorized, models.ErrorResponse{
			Kind:    models.ErrorKindAuthentication,
			Message: "invalid username or password",
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "ada_l", Password: "wrong"})

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("server unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := newTestAdapter(t, url).Login(context.Background(), models.Credentials{Username: "ada_l", Password: "Passw0rd"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, versionPath, r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}
