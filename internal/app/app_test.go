package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abuammar/academy/internal/catalog"
	cert "github.com/abuammar/academy/internal/certificate"
	"github.com/abuammar/academy/internal/router"
	"github.com/abuammar/academy/internal/screen"
	"github.com/abuammar/academy/internal/screens/course"
	"github.com/abuammar/academy/internal/screens/exam"
	"github.com/abuammar/academy/internal/screens/help"
	"github.com/abuammar/academy/internal/screens/home"
	"github.com/abuammar/academy/internal/screens/result"
	"github.com/abuammar/academy/internal/screens/welcome"
	"github.com/abuammar/academy/internal/session"
	"github.com/abuammar/academy/internal/store"
)

type stubIssuer struct {
	calls int
}

func (s *stubIssuer) Issue(_ context.Context, req cert.Request) (cert.Artifact, error) {
	s.calls++
	return cert.Artifact{Serial: "serial-1", Path: "/tmp/" + cert.FileName(req)}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testApp(t *testing.T) (AppModel, store.EventRepo, *stubIssuer) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.Open("")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	issuer := &stubIssuer{}
	journal := st.EventRepo()
	m := newAppModel(Options{
		Catalog:     cat,
		Issuer:      issuer,
		Journal:     journal,
		SkipWelcome: true,
	})
	return m, journal, issuer
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

// follow runs cmd and feeds its message back when it is a navigation or
// session message.
func follow(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	switch msg.(type) {
	case screen.StateChangedMsg, router.PopScreenMsg, result.IssuedMsg:
	default:
		t.Fatalf("unexpected message %T", msg)
	}
	m, _ = update(t, m, msg)
	return m
}

func TestApp_FullPassingFlow(t *testing.T) {
	m, journal, issuer := testApp(t)

	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home, got %T", m.router.Active())
	}

	// IT Basics is the third course.
	m, cmd := update(t, m, keyPress('3'))
	m = follow(t, m, cmd)
	if _, ok := m.router.Active().(*course.CourseScreen); !ok {
		t.Fatalf("expected course screen, got %T", m.router.Active())
	}

	m, cmd = update(t, m, specialKey(tea.KeyEnter))
	m = follow(t, m, cmd)
	if _, ok := m.router.Active().(*exam.ExamScreen); !ok {
		t.Fatalf("expected exam screen, got %T", m.router.Active())
	}

	m, _ = update(t, m, keyPress('2')) // Keyboard
	m, cmd = update(t, m, keyPress('s'))
	m = follow(t, m, cmd)
	if _, ok := m.router.Active().(*result.ResultScreen); !ok {
		t.Fatalf("expected result screen, got %T", m.router.Active())
	}

	for _, r := range "Amina" {
		m, _ = update(t, m, keyPress(r))
	}
	m, cmd = update(t, m, specialKey(tea.KeyEnter))
	m = follow(t, m, cmd)

	if issuer.calls != 1 {
		t.Errorf("issuer called %d times, want 1", issuer.calls)
	}

	ctx := context.Background()
	attempts, err := journal.RecentAttempts(ctx, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(attempts) != 1 || attempts[0].CourseID != "it-basics" || attempts[0].Percentage != 100 || !attempts[0].Passed {
		t.Errorf("journal attempts = %+v", attempts)
	}
	n, err := journal.CertificateCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("certificates journaled = %d, want 1", n)
	}
}

func TestApp_EscReturnsHomeAndDropsCourse(t *testing.T) {
	m, _, _ := testApp(t)

	m, cmd := update(t, m, keyPress('1'))
	m = follow(t, m, cmd)
	m, cmd = update(t, m, specialKey(tea.KeyEnter))
	m = follow(t, m, cmd)
	m, _ = update(t, m, keyPress('2'))

	m, _ = update(t, m, specialKey(tea.KeyEscape))

	if _, ok := m.machine.State().(session.Home); !ok {
		t.Fatalf("expected Home state, got %T", m.machine.State())
	}
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestApp_EscOnHomeIsNoop(t *testing.T) {
	m, _, _ := testApp(t)
	m, cmd := update(t, m, specialKey(tea.KeyEscape))
	if cmd != nil {
		t.Error("esc on home should do nothing")
	}
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", m.router.Active())
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	m, _, _ := testApp(t)

	m, _ = update(t, m, keyPress('?'))
	if _, ok := m.router.Active().(*help.HelpScreen); !ok {
		t.Fatalf("expected help screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}

	m, cmd := update(t, m, specialKey(tea.KeyEscape))
	m = follow(t, m, cmd)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home after closing help, got %T", m.router.Active())
	}
}

func TestApp_HelpKeyTypesIntoNameField(t *testing.T) {
	m, _, _ := testApp(t)
	m, cmd := update(t, m, keyPress('3'))
	m = follow(t, m, cmd)
	m, cmd = update(t, m, specialKey(tea.KeyEnter))
	m = follow(t, m, cmd)
	m, _ = update(t, m, keyPress('2'))
	m, cmd = update(t, m, keyPress('s'))
	m = follow(t, m, cmd)

	m, _ = update(t, m, keyPress('?'))
	if m.router.Depth() != 1 {
		t.Error("help must not open while typing a name")
	}
	st := m.machine.State().(session.Certificate)
	if st.LearnerName != "?" {
		t.Errorf("learner name = %q, want %q", st.LearnerName, "?")
	}
}

func TestApp_WelcomeFirst(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	m := newAppModel(Options{Catalog: cat, Issuer: &stubIssuer{}})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected welcome screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("welcome should start its animation")
	}

	m, cmd := update(t, m, keyPress('x'))
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	m, _ = update(t, m, cmd())
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home after welcome, got %T", m.router.Active())
	}
}

func TestApp_ContentAndHints(t *testing.T) {
	m, _, _ := testApp(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	_ = m.View()

	if !strings.Contains(m.router.View(100, 34), "IT Basics") {
		t.Error("home content should list courses")
	}

	hints := m.keyHints(m.router.Active())
	last := hints[len(hints)-1]
	if last.Key != "Ctrl+C" {
		t.Errorf("last hint = %q, want Ctrl+C", last.Key)
	}
	if len(hints) != 5 {
		t.Errorf("hints = %d, want the home hints plus quit", len(hints))
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		state session.State
		want  string
	}{
		{session.Home{}, ""},
		{session.CourseDetail{Course: catalog.Course{Lessons: make([]catalog.Lesson, 2)}}, "2 lessons"},
		{session.Certificate{}, "✗ 0%"},
	}
	for _, tt := range tests {
		if got := statusLine(tt.state); got != tt.want {
			t.Errorf("statusLine(%T) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
