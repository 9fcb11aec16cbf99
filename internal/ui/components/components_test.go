package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestButton_EnterAndShortcut(t *testing.T) {
	pressed := 0
	b := NewButton("Take Quiz", "t", func() tea.Cmd {
		pressed++
		return nil
	})

	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	b, _ = b.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	b, _ = b.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if pressed != 2 {
		t.Errorf("pressed = %d, want 2", pressed)
	}

	b.Disabled = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != 2 {
		t.Error("disabled button must not fire")
	}
	if !strings.Contains(b.View(), "[t]") {
		t.Error("view should show the shortcut")
	}
}

func TestMeter_Suffix(t *testing.T) {
	if got := (Meter{Label: "Answered", Value: 2, Max: 3, Width: 40}).View(); !strings.Contains(got, "2/3") {
		t.Errorf("count meter = %q", got)
	}
	got := Meter{Label: "Score", Value: 67, Max: 100, Target: 70, Percent: true, Width: 40}.View()
	if !strings.Contains(got, "67%") || !strings.Contains(got, "│") {
		t.Errorf("score meter = %q", got)
	}
}

func TestMultiChoice_DigitSelects(t *testing.T) {
	mc := NewMultiChoice("Which is hardware?", []string{"MS Excel", "Keyboard", "Linux"}, NoChoice)
	if mc.HasChoice() {
		t.Fatal("new question should have no choice")
	}
	mc, _ = mc.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if mc.Chosen != 1 {
		t.Errorf("chosen = %d, want 1", mc.Chosen)
	}
}

func TestMenu_NavigationClamps(t *testing.T) {
	var got string
	item := func(id string) MenuItem {
		return MenuItem{Label: id, Action: func() tea.Cmd { got = id; return nil }}
	}
	m := NewMenu([]MenuItem{item("a"), item("b"), item("c")})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("up at top: selected = %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'G', Text: "G"})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("down at bottom: selected = %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got != "c" {
		t.Errorf("enter activated %q, want c", got)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if got != "b" || m.Selected != 1 {
		t.Errorf("digit activated %q (selected %d), want b", got, m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	if got != "b" {
		t.Error("out of range digit must do nothing")
	}
}
