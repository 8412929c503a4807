package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	errResp, ok := resp.Error().(*models.ErrorResponse)
	if !ok || errResp.Kind == "" {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}

	switch errResp.Kind {
	case models.ErrorKindValidation:
		return &service.ValidationError{Reason: errResp.Message, Err: ErrRejectedByServer}
	case models.ErrorKindConflict:
		return &store.ConflictError{Field: conflictField(errResp.Field)}
	case models.ErrorKindAuthentication:
		return service.ErrInvalidCredentials
	default:
		return fmt.Errorf("%w: %s", ErrServerFailure, errResp.Message)
	}
}

func conflictField(field string) store.ConflictField {
	switch store.ConflictField(field) {
	case store.ConflictUsername, store.ConflictEmail:
		return store.ConflictField(field)
	default:
		return store.ConflictUnknown
	}
}
