package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/screen"
	"github.com/abuammar/academy/internal/session"
	"github.com/abuammar/academy/internal/store"
	"github.com/abuammar/academy/internal/ui/components"
	"github.com/abuammar/academy/internal/ui/layout"
	"github.com/abuammar/academy/internal/ui/theme"
)

// RecentLimit is how many attempts the home panel lists.
const RecentLimit = 5

// History reads the learner's past activity from the journal.
type History interface {
	RecentAttempts(ctx context.Context, limit int) ([]store.AttemptRecord, error)
	CertificateCount(ctx context.Context) (int, error)
}

type recentLoadedMsg struct {
	Attempts     []store.AttemptRecord
	Certificates int
	Err          error
}

// HomeScreen lists the catalog's courses.
type HomeScreen struct {
	machine  *session.Machine
	history  History
	menu     components.Menu
	recent   []store.AttemptRecord
	earned   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. history may be nil when no journal is open.
func New(machine *session.Machine, history History) *HomeScreen {
	h := &HomeScreen{
		machine: machine,
		history: history,
	}

	courses := machine.Catalog().Courses()
	items := make([]components.MenuItem, 0, len(courses)+1)
	for _, c := range courses {
		id := c.ID
		items = append(items, components.MenuItem{
			Label:  c.Title,
			Detail: c.Description,
			Action: func() tea.Cmd { return h.open(id) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Exit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	h.menu = components.NewMenu(items)

	return h
}

func (h *HomeScreen) open(id string) tea.Cmd {
	from := h.machine.State()
	if err := h.machine.SelectCourse(id); err != nil {
		h.errMsg = err.Error()
		return nil
	}
	return screen.StateChanged(from)
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.history == nil {
		h.loaded = true
		return nil
	}
	history := h.history
	return func() tea.Msg {
		ctx := context.Background()
		recs, err := history.RecentAttempts(ctx, RecentLimit)
		if err != nil {
			return recentLoadedMsg{Err: err}
		}
		n, err := history.CertificateCount(ctx)
		return recentLoadedMsg{Attempts: recs, Certificates: n, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Courses"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "?", Description: "Help"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recentLoadedMsg:
		h.loaded = true
		if msg.Err != nil {
			// The panel is informational; keep the menu usable.
			h.recent = nil
			return h, nil
		}
		h.recent = msg.Attempts
		h.earned = msg.Certificates
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(theme.Title.Render(h.machine.Catalog().Academy())),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(theme.Subtitle.Render("Choose a course to start learning")),
	)

	sections = append(sections, components.Card(strings.TrimRight(h.menu.View(), "\n"), cw))

	if h.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render(h.errMsg))
	}

	if !layout.IsCompactHeight(height) {
		sections = append(sections, h.renderRecent(cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) renderRecent(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Recent attempts"))
	b.WriteString("\n")

	switch {
	case !h.loaded:
		b.WriteString(theme.Hint.Render("Loading..."))
	case len(h.recent) == 0:
		b.WriteString(theme.Hint.Render("No attempts yet. Pick a course above!"))
	default:
		for i, a := range h.recent {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(formatAttempt(a))
		}
	}
	if h.earned > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Passed.Render(fmt.Sprintf("Certificates earned: %d", h.earned)))
	}

	return theme.Panel.Width(cw).Render(b.String())
}

func formatAttempt(a store.AttemptRecord) string {
	result := theme.Failed.Render(fmt.Sprintf("%3d%% retry", a.Percentage))
	if a.Passed {
		result = theme.Passed.Render(fmt.Sprintf("%3d%% pass ", a.Percentage))
	}
	when := theme.Hint.Render(a.Timestamp.Format("Jan 02 15:04"))
	return fmt.Sprintf("%s  %s  %s", result, a.CourseTitle, when)
}
