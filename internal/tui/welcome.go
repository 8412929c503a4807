package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel greets the logged-in account by display name.
type WelcomeModel struct {
	displayName string
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WelcomeNotice:
		m.displayName = msg.Account.DisplayName()
	case tea.KeyMsg:
		if key.Matches(msg, keys.back) {
			m.displayName = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	return renderPage("ACCOUNT KEEPER", successStyle.Render("Welcome, "+m.displayName+"!"), "esc: log out")
}
