package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is one labelled input of a form.
type formField struct {
	label string
	input textinput.Model
}

// newFormField builds an input without a character limit. Length rules
// belong to the [AccountClient]; a cut value would be sent as if typed.
func newFormField(label, placeholder string, secret bool) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 0
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return formField{label: label, input: in}
}

// form holds the inputs and focus shared by the login and register pages.
type form struct {
	fields []formField
	focus  int
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *form) focusNext() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) focusPrev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
}

func (f *form) render(b *strings.Builder) {
	for _, field := range f.fields {
		b.WriteString(labelStyle.Render(field.label))
		b.WriteString("[")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}
}
