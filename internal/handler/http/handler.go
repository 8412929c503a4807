package http

import (
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
)

// Handler serves the account API on top of the registration, auth and
// app-info services. Routes are mounted by [Handler.Init].
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler wires services into a Handler. The logger is the parent of the
// per-request loggers created by the trace-id middleware.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("account http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
