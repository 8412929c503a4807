package tui

import "github.com/MKhiriev/go-account-keeper/models"

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageWelcome  = "welcome"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

type LoginResult struct {
	Account models.Account
	Err     error
}

type RegisterResult struct {
	Account models.Account
	Err     error
}

// RegisterSuccessNotice is shown on the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

// WelcomeNotice carries the logged-in account to the welcome page.
type WelcomeNotice struct {
	Account models.Account
}

// ServerVersionResult answers the version request made when the build-info
// window opens in remote mode.
type ServerVersionResult struct {
	Version string
	Err     error
}
