package validators

import (
	"regexp"
	"unicode/utf8"
)

const (
	// MinUsernameLength is the fixed lower bound of a username, in characters.
	MinUsernameLength = 3

	// DefaultMaxUsernameLength is the upper bound used when none is configured.
	DefaultMaxUsernameLength = 30

	// MinPasswordLength is the minimal password length, in characters.
	MinPasswordLength = 8

	// MaxNameLength bounds first and last names.
	MaxNameLength = 50

	// MaxEmailLength bounds e-mail addresses.
	MaxEmailLength = 100
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateEmail reports whether value looks like local@domain.tld.
func ValidateEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidateUsername returns nil for a valid username. Checks run in order:
// too short, longer than maxLength, characters outside [A-Za-z0-9_].
// A maxLength below MinUsernameLength selects DefaultMaxUsernameLength.
func ValidateUsername(value string, maxLength int) error {
	if maxLength < MinUsernameLength {
		maxLength = DefaultMaxUsernameLength
	}

	length := utf8.RuneCountInString(value)
	if length < MinUsernameLength {
		return ErrUsernameTooShort
	}
	if length > maxLength {
		return ErrUsernameTooLong
	}

	for _, r := range value {
		if !isUsernameRune(r) {
			return ErrUsernameInvalidCharacters
		}
	}

	return nil
}

// ValidatePassword returns nil for a strong enough password; otherwise the
// first failing rule of: length, uppercase, lowercase, digit.
func ValidatePassword(value string) error {
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range value {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return ErrPasswordNoUppercase
	case !hasLower:
		return ErrPasswordNoLowercase
	case !hasDigit:
		return ErrPasswordNoDigit
	}

	return nil
}

func isUsernameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
