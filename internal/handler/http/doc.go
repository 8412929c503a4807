// Package http implements the JSON surface over the registration and
// authentication services.
//
// Routes, request handlers and the tracing and access-logging middlewares
// live here. Every failed request is answered with a [models.ErrorResponse]
// whose kind is chosen by errors_mapper.go.
package http
