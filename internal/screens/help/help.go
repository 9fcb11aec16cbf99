package help

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/router"
	"github.com/abuammar/academy/internal/screen"
	"github.com/abuammar/academy/internal/ui/components"
	"github.com/abuammar/academy/internal/ui/layout"
	"github.com/abuammar/academy/internal/ui/theme"
)

var bindings = []layout.KeyHint{
	{Key: "↑ ↓", Description: "move between courses, lessons or options"},
	{Key: "1-9", Description: "pick a course or an option by number"},
	{Key: "Enter", Description: "open, choose or confirm"},
	{Key: "← →", Description: "previous or next quiz question"},
	{Key: "t", Description: "take the quiz of the open course"},
	{Key: "s", Description: "submit the quiz"},
	{Key: "r", Description: "retake a quiz you did not pass"},
	{Key: "Esc", Description: "back to the course list"},
	{Key: "Ctrl+C", Description: "quit"},
}

// HelpScreen lists key bindings. It is pushed over the current screen and
// popped with Esc or ?.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "?", "q", "enter":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("How it works"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Pick a course, read its lessons and take the quiz.\nPass it to download your certificate as a PDF."))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Keys"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(8)
	for _, kb := range bindings {
		b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render(kb.Key), theme.Hint.Render(kb.Description)))
	}

	cw := components.ContentWidth(width)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(strings.TrimRight(b.String(), "\n"), cw))
}

func (h *HelpScreen) Title() string {
	return "Help"
}
