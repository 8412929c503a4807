package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

var errInvalidJSON = &service.ValidationError{
	Reason: app.MsgInvalidJSON,
	Err:    errors.New("invalid JSON"),
}

var errRequestBodyTooLarge = &service.ValidationError{
	Reason: app.MsgRequestBodyTooLarge,
	Err:    errors.New("request body too large"),
}

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrLoginFailed:        http.StatusInternalServerError,
	service.ErrRegistrationFailed: http.StatusInternalServerError,
}

var errorKindByStatus = map[int]models.ErrorKind{
	http.StatusBadRequest:          models.ErrorKindValidation,
	http.StatusConflict:            models.ErrorKindConflict,
	http.StatusUnauthorized:        models.ErrorKindAuthentication,
	http.StatusInternalServerError: models.ErrorKindInternal,
}

func statusFromError(err error) int {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var conflictErr *store.ConflictError
	if errors.As(err, &conflictErr) {
		return http.StatusConflict
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// responseFromError picks the status and the body sent for err. Messages of
// internal errors are replaced so that driver details never leave the server.
func responseFromError(err error) (int, models.ErrorResponse) {
	status := statusFromError(err)
	body := models.ErrorResponse{
		Kind:    errorKindByStatus[status],
		Message: err.Error(),
	}

	switch status {
	case http.StatusConflict:
		var conflictErr *store.ConflictError
		errors.As(err, &conflictErr)
		body.Field = string(conflictErr.Field)
		body.Message = conflictErr.Error()
	case http.StatusInternalServerError:
		if !errors.Is(err, service.ErrLoginFailed) && !errors.Is(err, service.ErrRegistrationFailed) {
			body.Message = app.MsgInternalServerError
		}
	}

	return status, body
}
