package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abuammar/academy/internal/ui/theme"
)

// Button is an action fired by Enter or by its shortcut key.
type Button struct {
	Label    string
	Shortcut string // optional, shown as [x]
	Disabled bool
	OnPress  func() tea.Cmd
}

func NewButton(label, shortcut string, onPress func() tea.Cmd) Button {
	return Button{Label: label, Shortcut: shortcut, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || b.Disabled || b.OnPress == nil {
		return b, nil
	}
	switch k := kmsg.String(); {
	case k == "enter", b.Shortcut != "" && k == b.Shortcut:
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Shortcut != "" {
		label += "  [" + b.Shortcut + "]"
	}
	if b.Disabled {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}
