package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abuammar/academy/internal/ui/theme"
)

// MenuItem is one numbered entry of a Menu.
type MenuItem struct {
	Label  string
	Detail string // optional dim second line
	Action func() tea.Cmd
}

// Menu is a vertical list activated with Enter or an item's number (1-9).
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = max(m.Selected-1, 0)
	case "down", "j":
		m.Selected = min(m.Selected+1, len(m.Items)-1)
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter":
		return m, m.activate()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= min(len(m.Items), 9) {
			m.Selected = n - 1
			return m, m.activate()
		}
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) || m.Items[m.Selected].Action == nil {
		return nil
	}
	return m.Items[m.Selected].Action()
}

func (m Menu) View() string {
	lines := make([]string, 0, 2*len(m.Items))
	for i, item := range m.Items {
		label := strconv.Itoa(i+1) + ". " + item.Label
		if i == m.Selected {
			lines = append(lines, theme.Selected.Render("  ▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("    "+label))
		}
		if item.Detail != "" {
			lines = append(lines, theme.Hint.Render("       "+item.Detail))
		}
	}
	return strings.Join(lines, "\n")
}
