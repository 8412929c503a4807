package service

import "errors"

var (
	// ErrInvalidCredentials is the single failure returned for any login
	// mismatch. It never tells whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrLoginFailed reports an unexpected failure while checking credentials.
	ErrLoginFailed = errors.New("login failed, please try again later")

	// ErrRegistrationFailed reports an unexpected failure while storing a new
	// account. Details are logged, never returned.
	ErrRegistrationFailed = errors.New("registration failed, please try again later")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError reports malformed or missing registration input. Reason is
// suitable for direct display; Err is the validators sentinel behind it.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
