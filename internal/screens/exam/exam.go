package exam

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/catalog"
	"github.com/abuammar/academy/internal/quiz"
	"github.com/abuammar/academy/internal/screen"
	"github.com/abuammar/academy/internal/session"
	"github.com/abuammar/academy/internal/ui/components"
	"github.com/abuammar/academy/internal/ui/layout"
	"github.com/abuammar/academy/internal/ui/theme"
)

// ExamScreen presents the quiz of the active course one question at a time.
type ExamScreen struct {
	machine *session.Machine
	course  catalog.Course
	attempt quiz.Attempt
	index   int
	choice  components.MultiChoice

	// confirming is set after a first submit with unanswered questions.
	confirming bool
	errMsg     string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an ExamScreen for the machine's Quiz state.
func New(machine *session.Machine, st session.Quiz) *ExamScreen {
	e := &ExamScreen{
		machine: machine,
		course:  st.Course,
		attempt: st.Attempt,
	}
	e.load(0)
	return e
}

// load moves to question i, restoring its recorded selection.
func (e *ExamScreen) load(i int) {
	e.index = i
	if i >= e.course.Quiz.Len() {
		e.choice = components.MultiChoice{}
		return
	}
	q := e.course.Quiz.Questions[i]
	e.choice = components.NewMultiChoice(q.Prompt, q.Options, e.attempt.Selection(i))
}

func (e *ExamScreen) Init() tea.Cmd {
	return nil
}

func (e *ExamScreen) Title() string {
	return e.course.Title + " Quiz"
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Choose"},
		{Key: "←→", Description: "Question"},
		{Key: "s", Description: "Submit"},
		{Key: "Esc", Description: "Home"},
	}
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	key := kmsg.String()
	if key != "s" {
		e.confirming = false
	}

	switch key {
	case "left", "h", "shift+tab":
		if e.index > 0 {
			e.load(e.index - 1)
		}
		return e, nil
	case "right", "l", "tab":
		if e.index < e.course.Quiz.Len()-1 {
			e.load(e.index + 1)
		}
		return e, nil
	case "s":
		return e, e.submit()
	}

	before := e.choice.Chosen
	e.choice, _ = e.choice.Update(msg)
	if e.choice.Chosen == before || !e.choice.HasChoice() {
		// Enter on an already chosen option still moves on.
		if key == "enter" && e.choice.HasChoice() {
			e.advance()
		}
		return e, nil
	}

	if err := e.machine.Choose(e.index, e.choice.Chosen); err != nil {
		e.errMsg = err.Error()
		e.choice.Chosen = before
		return e, nil
	}
	e.errMsg = ""
	if st, ok := e.machine.State().(session.Quiz); ok {
		e.attempt = st.Attempt
	}
	if key == "enter" {
		e.advance()
	}
	return e, nil
}

func (e *ExamScreen) advance() {
	if e.index < e.course.Quiz.Len()-1 {
		e.load(e.index + 1)
	}
}

func (e *ExamScreen) submit() tea.Cmd {
	if missing := e.unanswered(); missing > 0 && !e.confirming {
		e.confirming = true
		return nil
	}
	e.confirming = false
	from := e.machine.State()
	if _, err := e.machine.Submit(); err != nil {
		e.errMsg = err.Error()
		return nil
	}
	return screen.StateChanged(from)
}

func (e *ExamScreen) unanswered() int {
	return e.attempt.Len() - e.attempt.Answered()
}

func (e *ExamScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	n := e.course.Quiz.Len()

	var sections []string
	sections = append(sections,
		theme.Heading.Render(fmt.Sprintf("Question %d of %d", e.index+1, n)),
		components.Meter{Label: "Answered", Value: e.attempt.Answered(), Max: n, Width: cw}.View(),
		components.Card(strings.TrimRight(e.choice.View(), "\n"), cw),
	)

	switch {
	case e.errMsg != "":
		sections = append(sections, theme.ErrorText.Render(e.errMsg))
	case e.confirming:
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("%d question(s) unanswered and will count as wrong. Press s again to submit.", e.unanswered())))
	default:
		sections = append(sections, theme.Hint.Render(
			fmt.Sprintf("Pass mark %d%%. Press s to submit when you are done.", e.course.Quiz.PassMark)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}
