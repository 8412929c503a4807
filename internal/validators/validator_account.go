package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-account-keeper/models"
)

// Field name constants used to restrict AccountValidator to a subset of
// registration rules.
const (
	// FieldRequired checks that all six form fields are non-empty.
	FieldRequired = "required"

	// FieldNames checks the length bound of first and last name.
	FieldNames = "names"

	// FieldEmail checks e-mail syntax and length.
	FieldEmail = "email"

	// FieldUsername checks username length and charset.
	FieldUsername = "username"

	// FieldPassword checks password strength.
	FieldPassword = "password"

	// FieldPasswordConfirmation checks that both password entries are equal.
	FieldPasswordConfirmation = "password_confirmation"
)

// registrationOrder is the order in which a full registration form is checked.
// The first failing rule wins.
var registrationOrder = []string{
	FieldRequired,
	FieldNames,
	FieldEmail,
	FieldUsername,
	FieldPassword,
	FieldPasswordConfirmation,
}

// AccountValidator implements the Validator interface for
// [models.RegistrationForm].
type AccountValidator struct {
	maxUsernameLength int
}

// NewAccountValidator constructs an AccountValidator enforcing the given upper
// bound on username length. Values below MinUsernameLength select
// DefaultMaxUsernameLength.
func NewAccountValidator(maxUsernameLength int) Validator {
	if maxUsernameLength < MinUsernameLength {
		maxUsernameLength = DefaultMaxUsernameLength
	}

	return &AccountValidator{maxUsernameLength: maxUsernameLength}
}

// Validate checks a models.RegistrationForm (value or pointer). With no
// fields, every rule runs in registration order; otherwise only the named
// rules run, in the order given.
//
// Returns ErrUnsupportedType for any other input and ErrUnknownField for an
// unrecognized field name.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationForm:
		return v.validateRegistrationForm(ctx, value, fields...)
	case *models.RegistrationForm:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegistrationForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegistrationForm(_ context.Context, form models.RegistrationForm, fields ...string) error {
	if len(fields) == 0 {
		fields = registrationOrder
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if form.FirstName == "" || form.LastName == "" || form.Username == "" ||
				form.Email == "" || form.Password == "" || form.ConfirmPassword == "" {
				return ErrMissingFields
			}
		case FieldNames:
			if utf8.RuneCountInString(form.FirstName) > MaxNameLength ||
				utf8.RuneCountInString(form.LastName) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldEmail:
			if !ValidateEmail(form.Email) {
				return ErrInvalidEmail
			}
			if utf8.RuneCountInString(form.Email) > MaxEmailLength {
				return ErrEmailTooLong
			}
		case FieldUsername:
			if err := ValidateUsername(form.Username, v.maxUsernameLength); err != nil {
				return err
			}
		case FieldPassword:
			if err := ValidatePassword(form.Password); err != nil {
				return err
			}
		case FieldPasswordConfirmation:
			if form.Password != form.ConfirmPassword {
				return ErrPasswordsDontMatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
