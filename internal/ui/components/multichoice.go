package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/ui/theme"
)

// NoChoice marks a MultiChoice with nothing chosen yet.
const NoChoice = -1

// MultiChoice is a single-choice selector. The cursor moves freely; an
// option becomes Chosen on Enter, Space or its number key, and can be
// changed until the owner stops forwarding input.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int
}

// NewMultiChoice creates a selector with chosen preselected (or NoChoice).
func NewMultiChoice(question string, options []string, chosen int) MultiChoice {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	} else {
		chosen = NoChoice
	}
	return MultiChoice{
		Question: question,
		Options:  options,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space":
		m.Chosen = m.Cursor
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Cursor = n - 1
			m.Chosen = n - 1
		}
	}

	return m, nil
}

// HasChoice reports whether an option has been chosen.
func (m MultiChoice) HasChoice() bool {
	return m.Chosen != NoChoice
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.Chosen {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, optionLabel(i), opt)

		switch {
		case i == m.Chosen:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line))
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// optionLabel returns A, B, C... falling back to numbers past Z.
func optionLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return strconv.Itoa(i + 1)
}
