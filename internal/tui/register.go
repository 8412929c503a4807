package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the registration page. It collects the six form values
// and leaves every check to the [AccountClient], so the first failing rule
// is reported exactly as the service orders them.
type RegisterModel struct {
	ctx    context.Context
	client AccountClient

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, client AccountClient, maxUsernameLength int) *RegisterModel {
	return &RegisterModel{
		ctx:    ctx,
		client: client,
		form: newForm(
			newFormField("First Name", "Ada", false),
			newFormField("Last Name", "Lovelace", false),
			newFormField("Username", fmt.Sprintf("up to %d letters, numbers and _", maxUsernameLength), false),
			newFormField("Email", "ada@example.com", false),
			newFormField("Password", "8+ chars, upper, lower, digit", true),
			newFormField("Confirm Password", "", true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		username := result.Account.Username
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: username}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.back):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.next):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(m.registrationForm())
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.render(&b)

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	renderStatus(&b, m.errMsg, "")

	return renderPage("REGISTER NOW", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) registrationForm() models.RegistrationForm {
	return models.RegistrationForm{
		FirstName:       m.form.value(0),
		LastName:        m.form.value(1),
		Username:        m.form.value(2),
		Email:           m.form.value(3),
		Password:        m.form.value(4),
		ConfirmPassword: m.form.value(5),
	}
}

func (m *RegisterModel) cmdRegister(form models.RegistrationForm) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		account, err := client.Register(ctx, form)
		return RegisterResult{Account: account, Err: err}
	}
}
