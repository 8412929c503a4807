package adapter

import "errors"

var (
	// ErrServerFailure wraps a failure the server reported as internal.
	ErrServerFailure = errors.New("server failure")

	// ErrRejectedByServer is the cause behind a validation error returned by
	// the server.
	ErrRejectedByServer = errors.New("rejected by server")

	// ErrUnexpectedResponse reports a status or body the adapter cannot read.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
