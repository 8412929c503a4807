package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Registration rule violations. The error text is the human-readable reason
// shown to the person filling in the form.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrNameTooLong        = errors.New("first and last name must be at most 50 characters long")
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrEmailTooLong       = errors.New("email must be at most 100 characters long")
	ErrPasswordsDontMatch = errors.New("passwords do not match")

	ErrUsernameTooShort          = errors.New("username is too short")
	ErrUsernameTooLong           = errors.New("username is too long")
	ErrUsernameInvalidCharacters = errors.New("username contains invalid characters: only letters, numbers and underscores are allowed")

	ErrPasswordTooShort    = errors.New("password is too short: at least 8 characters are required")
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain at least one number")
)
