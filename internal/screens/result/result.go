package result

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	cert "github.com/abuammar/academy/internal/certificate"
	"github.com/abuammar/academy/internal/screen"
	"github.com/abuammar/academy/internal/session"
	"github.com/abuammar/academy/internal/ui/components"
	"github.com/abuammar/academy/internal/ui/layout"
	"github.com/abuammar/academy/internal/ui/theme"
)

// IssueTimeout bounds a single certificate render.
const IssueTimeout = 30 * time.Second

const nameLimit = 64

// IssuedMsg reports the outcome of a certificate render.
type IssuedMsg struct {
	SessionID string
	CourseID  string
	Artifact  cert.Artifact
	Err       error
}

// ResultScreen shows the score of a submitted quiz. A passing learner can
// enter their name and save a certificate; a failing one can retake.
type ResultScreen struct {
	machine *session.Machine
	issuer  cert.Issuer
	state   session.Certificate
	input   components.TextInput
	retake  components.Button

	saving   bool
	artifact *cert.Artifact
	errMsg   string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.InputCapturer = (*ResultScreen)(nil)

// New creates a ResultScreen for the machine's Certificate state.
func New(machine *session.Machine, issuer cert.Issuer, st session.Certificate) *ResultScreen {
	r := &ResultScreen{
		machine: machine,
		issuer:  issuer,
		state:   st,
	}
	if st.Score.Passed {
		r.input = components.NewTextInput("Your full name", st.LearnerName, nameLimit)
	} else {
		r.retake = components.NewButton("Retake Quiz", "r", r.retakeQuiz)
	}
	return r
}

func (r *ResultScreen) retakeQuiz() tea.Cmd {
	from := r.machine.State()
	if err := r.machine.RetakeQuiz(); err != nil {
		r.errMsg = err.Error()
		return nil
	}
	return screen.StateChanged(from)
}

func (r *ResultScreen) passed() bool {
	return r.state.Score.Passed
}

func (r *ResultScreen) Init() tea.Cmd {
	if r.passed() {
		return r.input.Init()
	}
	return nil
}

func (r *ResultScreen) Title() string {
	if r.passed() {
		return "Certificate"
	}
	return "Result"
}

func (r *ResultScreen) CapturingInput() bool {
	return r.passed()
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	if r.passed() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Download certificate"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "r", Description: "Retake quiz"},
		{Key: "Esc", Description: "Home"},
		{Key: "?", Description: "Help"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(IssuedMsg); ok {
		r.saving = false
		if msg.Err != nil {
			r.artifact = nil
			r.errMsg = describeIssueError(msg.Err)
			return r, nil
		}
		art := msg.Artifact
		r.artifact = &art
		r.errMsg = ""
		return r, nil
	}

	if !r.passed() {
		var cmd tea.Cmd
		r.retake, cmd = r.retake.Update(msg)
		return r, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return r, r.download()
	}

	before := r.input.Value()
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	if r.input.Value() != before {
		if err := r.machine.SetLearnerName(r.input.Value()); err != nil {
			r.errMsg = err.Error()
		}
		r.state.LearnerName = r.input.Value()
	}
	return r, cmd
}

// download starts rendering in the background. The request is a copy, so
// the machine is never touched off the update loop.
func (r *ResultScreen) download() tea.Cmd {
	if r.saving {
		return nil
	}
	if r.input.Blank() {
		r.input.SetInvalid("Please enter your name for the certificate")
		return nil
	}
	req, err := r.machine.CertificateRequest()
	if err != nil {
		r.errMsg = err.Error()
		return nil
	}

	r.saving = true
	r.errMsg = ""
	issuer := r.issuer
	sessionID := r.machine.ID()
	courseID := r.state.Course.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), IssueTimeout)
		defer cancel()
		art, err := issuer.Issue(ctx, req)
		return IssuedMsg{SessionID: sessionID, CourseID: courseID, Artifact: art, Err: err}
	}
}

func describeIssueError(err error) string {
	if errors.Is(err, cert.ErrBlankName) {
		return "Please enter your name for the certificate."
	}
	return fmt.Sprintf("Could not save the certificate: %v. Press Enter to try again.", err)
}

func (r *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	pct := r.state.Score.Percentage
	meter := components.Meter{
		Label:   "Score",
		Value:   pct,
		Max:     100,
		Target:  r.state.Course.Quiz.PassMark,
		Percent: true,
		Width:   cw,
	}

	var sections []string
	if !r.passed() {
		sections = append(sections,
			theme.Failed.Render(fmt.Sprintf("Sorry, you scored %d%%. Please try again.", pct)),
			meter.View(),
			theme.Hint.Render(fmt.Sprintf("You need %d%% to pass %s.", r.state.Course.Quiz.PassMark, r.state.Course.Title)),
			r.retake.View(),
		)
	} else {
		sections = append(sections,
			theme.Passed.Render(fmt.Sprintf("Congratulations! You scored %d%%.", pct)),
			meter.View(),
			theme.Body.Render("You passed "+r.state.Course.Title+"."),
			components.Card(theme.Heading.Render("Name on certificate")+"\n\n"+r.input.View(), cw),
		)

		switch {
		case r.saving:
			sections = append(sections, theme.Hint.Render("Saving certificate..."))
		case r.artifact != nil:
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.Success).Render("✓ Certificate saved to "+r.artifact.Path),
				theme.Hint.Render("Serial "+r.artifact.Serial),
			)
		default:
			sections = append(sections, components.Button{Label: "Download Certificate", Disabled: r.input.Blank()}.View())
		}
	}

	if r.errMsg != "" {
		sections = append(sections, theme.ErrorText.Width(cw).Render(r.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}
