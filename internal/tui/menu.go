package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	page  string
}

type MenuModel struct {
	items  []menuItem
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Log in", page: pageLogin},
			{title: "Register", page: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		m.status = "Registration successful! Welcome aboard, " + msg.Username + "."
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			m.status = ""
			page := m.items[m.idx].page
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString("Join our community to unlock exclusive insights and services.\n\n")
	for i, item := range m.items {
		if i == m.idx {
			b.WriteString(cursorStyle.Render("> " + item.title))
		} else {
			b.WriteString("  " + item.title)
		}
		b.WriteString("\n")
	}
	renderStatus(&b, "", m.status)

	return renderPage("WELCOME TO ACCOUNT KEEPER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
