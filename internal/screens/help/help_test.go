package help

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abuammar/academy/internal/router"
)

func TestHelp_ListsBindings(t *testing.T) {
	view := New().View(100, 40)
	for _, want := range []string{"How it works", "Esc", "back to the course list", "submit the quiz"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelp_ClosesItself(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: '?', Text: "?"},
		{Code: 'q', Text: "q"},
		{Code: tea.KeyEnter},
	} {
		_, cmd := New().Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected a command", key.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("%s: expected PopScreenMsg", key.String())
		}
	}
}

func TestHelp_Title(t *testing.T) {
	if New().Title() != "Help" {
		t.Errorf("Title = %q", New().Title())
	}
}
