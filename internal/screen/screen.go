package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abuammar/academy/internal/session"
	"github.com/abuammar/academy/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that own a text field. While it
// reports true, global single-key shortcuts are delivered to the screen.
type InputCapturer interface {
	CapturingInput() bool
}

// StateChangedMsg tells the app that the session moved on from From and
// the screen for the new state must be built.
type StateChangedMsg struct {
	From session.State
}

// StateChanged returns a command emitting StateChangedMsg.
func StateChanged(from session.State) tea.Cmd {
	return func() tea.Msg {
		return StateChangedMsg{From: from}
	}
}
