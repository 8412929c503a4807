package models

// ErrorKind discriminates the failure reported in an [ErrorResponse].
type ErrorKind string

const (
	// ErrorKindValidation marks malformed or missing input.
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindConflict marks a username or email that is already taken.
	ErrorKindConflict ErrorKind = "conflict"

	// ErrorKindAuthentication marks a failed login.
	ErrorKindAuthentication ErrorKind = "authentication"

	// ErrorKindInternal marks an unexpected server-side failure.
	ErrorKindInternal ErrorKind = "internal"
)

// ErrorResponse is the JSON body returned by the HTTP surface for every
// failed register or login request.
type ErrorResponse struct {
	Kind ErrorKind `json:"kind"`

	// Message is the human-readable reason suitable for direct display.
	Message string `json:"message"`

	// Field names the colliding field for conflict errors
	// ("username", "email" or "unknown").
	Field string `json:"field,omitempty"`
}

// AccountResponse is the public view of an [Account] returned after a
// successful registration or login.
type AccountResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
}

// NewAccountResponse builds the public view of account.
func NewAccountResponse(account Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		Username:    account.Username,
		Email:       account.Email,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		DisplayName: account.DisplayName(),
	}
}

// Account converts the response back into an [Account] without a digest.
func (r AccountResponse) Account() Account {
	return Account{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}
