package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the app's styling.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	invalid  string
}

// NewTextInput creates a new focused text input holding value.
func NewTextInput(placeholder, value string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	ti.SetValue(value)
	ti.Focus()

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the wrapped model. Editing clears any
// validation message.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	before := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.invalid = ""
	}
	return t, cmd
}

// View renders the text input with its validation message, if any.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.invalid != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.invalid)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Blank reports whether the value is empty after trimming spaces.
func (t TextInput) Blank() bool {
	return strings.TrimSpace(t.Model.Value()) == ""
}

// SetInvalid shows msg under the field until the next edit.
func (t *TextInput) SetInvalid(msg string) {
	t.invalid = msg
}
