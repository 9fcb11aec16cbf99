package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/catalog"
	cert "github.com/abuammar/academy/internal/certificate"
	"github.com/abuammar/academy/internal/router"
	"github.com/abuammar/academy/internal/screen"
	"github.com/abuammar/academy/internal/screens"
	"github.com/abuammar/academy/internal/screens/help"
	"github.com/abuammar/academy/internal/screens/result"
	"github.com/abuammar/academy/internal/screens/welcome"
	"github.com/abuammar/academy/internal/session"
	"github.com/abuammar/academy/internal/store"
	"github.com/abuammar/academy/internal/ui/layout"
)

// Options holds the dependencies for the app.
type Options struct {
	Catalog *catalog.Catalog
	Issuer  cert.Issuer
	Journal store.EventRepo // optional
	Logger  *slog.Logger    // optional

	// SkipWelcome starts directly on the course list.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model. It owns the session machine and
// rebuilds the active screen whenever the session changes state.
type AppModel struct {
	machine *session.Machine
	deps    screens.Deps
	journal store.EventRepo
	logger  *slog.Logger
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates a new AppModel positioned on the welcome screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	machine := session.New(opts.Catalog)
	deps := screens.Deps{Machine: machine, Issuer: opts.Issuer}
	if opts.Journal != nil {
		deps.History = opts.Journal
	}

	m := AppModel{
		machine: machine,
		deps:    deps,
		journal: opts.Journal,
		logger:  logger.With("session", machine.ID()),
	}

	if opts.SkipWelcome {
		m.router = router.New(screens.For(deps))
	} else {
		m.router = router.New(welcome.New(opts.Catalog.Academy(), func() screen.Screen {
			return screens.For(deps)
		}))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	m.logger.Info("session started", "courses", m.machine.Catalog().Len())
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Info("session ended", "screen", m.machine.Screen().String())
			return m, tea.Quit
		case "esc":
			return m, m.back()
		case "?":
			if m.router.Depth() == 1 && !m.capturingInput() {
				if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
					return m, m.router.Push(help.New())
				}
			}
		}

	case screen.StateChangedMsg:
		m.record(msg.From, m.machine.State())
		return m, m.rebuild()

	case result.IssuedMsg:
		m.recordCertificate(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// back closes an overlay, or returns the session to the course list.
func (m AppModel) back() tea.Cmd {
	if m.router.Depth() > 1 {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); ok {
		return m.router.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	}
	if m.machine.Screen() == session.ScreenHome {
		return nil
	}
	m.logger.Debug("back to home", "from", m.machine.Screen().String())
	m.machine.GoHome()
	return m.rebuild()
}

func (m AppModel) rebuild() tea.Cmd {
	return m.router.Reset(screens.For(m.deps))
}

func (m AppModel) capturingInput() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

// record journals a transition. Journal failures are logged and ignored.
func (m AppModel) record(from, to session.State) {
	m.logger.Debug("session transition", "from", from.Screen().String(), "to", to.Screen().String())
	if m.journal == nil {
		return
	}
	ctx := context.Background()

	var err error
	switch st := to.(type) {
	case session.CourseDetail:
		if _, ok := from.(session.Home); ok {
			err = m.journal.AppendCourseOpened(ctx, store.CourseOpenedData{
				SessionID: m.machine.ID(),
				CourseID:  st.Course.ID,
			})
		}
	case session.Certificate:
		q, ok := from.(session.Quiz)
		if !ok {
			return
		}
		m.logger.Info("quiz submitted",
			"course", st.Course.ID,
			"percentage", st.Score.Percentage,
			"passed", st.Score.Passed,
		)
		err = m.journal.AppendQuizSubmitted(ctx, store.QuizSubmittedData{
			SessionID:   m.machine.ID(),
			CourseID:    st.Course.ID,
			CourseTitle: st.Course.Title,
			Answered:    q.Attempt.Answered(),
			Questions:   q.Attempt.Len(),
			Percentage:  st.Score.Percentage,
			Passed:      st.Score.Passed,
		})
	}
	if err != nil {
		m.logger.Warn("journal write failed", "error", err)
	}
}

func (m AppModel) recordCertificate(msg result.IssuedMsg) {
	if msg.Err != nil {
		m.logger.Warn("certificate rendering failed", "course", msg.CourseID, "error", msg.Err)
		return
	}
	if m.journal == nil {
		return
	}
	err := m.journal.AppendCertificateIssued(context.Background(), store.CertificateIssuedData{
		SessionID: msg.SessionID,
		CourseID:  msg.CourseID,
		Serial:    msg.Artifact.Serial,
		Path:      msg.Artifact.Path,
	})
	if err != nil {
		m.logger.Warn("journal write failed", "error", err)
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.machine.Catalog().Academy(), title, statusLine(m.machine.State()), m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// statusLine is the right-hand header note for a state.
func statusLine(s session.State) string {
	switch st := s.(type) {
	case session.CourseDetail:
		return fmt.Sprintf("%d lessons", len(st.Course.Lessons))
	case session.Quiz:
		return fmt.Sprintf("%d/%d answered", st.Attempt.Answered(), st.Attempt.Len())
	case session.Certificate:
		if st.Score.Passed {
			return fmt.Sprintf("✓ %d%%", st.Score.Percentage)
		}
		return fmt.Sprintf("✗ %d%%", st.Score.Percentage)
	default:
		return ""
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
