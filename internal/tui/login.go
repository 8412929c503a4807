// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login page. A successful [LoginResult] moves to the
// welcome page; a failed one is shown under the form.
type LoginModel struct {
	ctx    context.Context
	client AccountClient

	form       form
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, client AccountClient) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		client: client,
		form: newForm(
			newFormField("Username", "username", false),
			newFormField("Password", "password", true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		account := result.Account
		return m, func() tea.Msg {
			return NavigateTo{Page: pageWelcome, Payload: WelcomeNotice{Account: account}}
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
			return m, m.cmdLogin(models.Credentials{
				Username: m.form.value(0),
				Password: m.form.value(1),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	m.form.render(&b)

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	renderStatus(&b, m.errMsg, "")

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		account, err := client.Login(ctx, credentials)
		return LoginResult{Account: account, Err: err}
	}
}
