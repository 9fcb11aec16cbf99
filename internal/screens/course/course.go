package course

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/catalog"
	"github.com/abuammar/academy/internal/screen"
	"github.com/abuammar/academy/internal/session"
	"github.com/abuammar/academy/internal/ui/components"
	"github.com/abuammar/academy/internal/ui/layout"
	"github.com/abuammar/academy/internal/ui/theme"
)

// CourseScreen shows the lessons of the active course and offers its quiz.
type CourseScreen struct {
	machine *session.Machine
	course  catalog.Course
	lesson  int
	button  components.Button
	errMsg  string
}

var _ screen.Screen = (*CourseScreen)(nil)
var _ screen.KeyHintProvider = (*CourseScreen)(nil)

// New creates a CourseScreen for the machine's CourseDetail state.
func New(machine *session.Machine, st session.CourseDetail) *CourseScreen {
	c := &CourseScreen{
		machine: machine,
		course:  st.Course,
	}
	c.button = components.NewButton("Take Quiz", "t", c.takeQuiz)
	return c
}

func (c *CourseScreen) takeQuiz() tea.Cmd {
	from := c.machine.State()
	if err := c.machine.RequestQuiz(); err != nil {
		c.errMsg = err.Error()
		return nil
	}
	return screen.StateChanged(from)
}

func (c *CourseScreen) Init() tea.Cmd {
	return nil
}

func (c *CourseScreen) Title() string {
	return c.course.Title
}

func (c *CourseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Lessons"},
		{Key: "Enter", Description: "Take quiz"},
		{Key: "Esc", Description: "Home"},
		{Key: "?", Description: "Help"},
	}
}

func (c *CourseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.lesson > 0 {
			c.lesson--
		}
		return c, nil
	case "down", "j":
		if c.lesson < len(c.course.Lessons)-1 {
			c.lesson++
		}
		return c, nil
	}

	var cmd tea.Cmd
	c.button, cmd = c.button.Update(msg)
	return c, cmd
}

func (c *CourseScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections,
		theme.Title.Render(c.course.Title),
		theme.Subtitle.Width(cw).Render(c.course.Description),
	)

	if len(c.course.Lessons) > 0 {
		sections = append(sections, components.Card(c.renderLessons(cw), cw))
	}

	q := c.course.Quiz
	sections = append(sections,
		theme.Hint.Render(fmt.Sprintf("Quiz: %d question(s), pass mark %d%%", q.Len(), q.PassMark)),
		c.button.View(),
	)

	if c.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render(c.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (c *CourseScreen) renderLessons(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Lessons"))
	b.WriteString("\n\n")
	for i, l := range c.course.Lessons {
		line := fmt.Sprintf("%d. %s", i+1, l.Title)
		if i == c.lesson {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	content := c.course.Lessons[c.lesson].Content
	b.WriteString("\n")
	b.WriteString(theme.Body.Width(cw - 6).Render(content))
	return b.String()
}
