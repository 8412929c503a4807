// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

// maxRequestBodyBytes bounds account request bodies; every valid form is far
// below it.
const maxRequestBodyBytes = 64 << 10

// register decodes a [models.RegistrationForm] and answers 201 with the
// public account view.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.RegistrationForm
	if err := decodeBody(w, r, &form); err != nil {
		log.Err(err).Msg("request body rejected")
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.RegistrationService.Register(ctx, form)
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("registration rejected")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", account.ID).Str("username", account.Username).Msg("account registered")
	h.writeJSON(w, r, models.NewAccountResponse(account), http.StatusCreated)
}

// login decodes [models.Credentials] and answers 200 with the public
// account view of the matching account.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeBody(w, r, &credentials); err != nil {
		log.Err(err).Msg("request body rejected")
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("login rejected")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", account.ID).Msg("user logged in")
	h.writeJSON(w, r, models.NewAccountResponse(account), http.StatusOK)
}

// decodeBody reads at most maxRequestBodyBytes of JSON into v. Failures are
// returned as validation errors ready for writeError.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errRequestBodyTooLarge
		}
		return errInvalidJSON
	}
	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := responseFromError(err)
	h.writeJSON(w, r, body, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
