package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/ui/theme"
)

// Meter draws Value out of Max as a bar. A positive Target adds a tick at
// that value, used for the pass mark.
type Meter struct {
	Label   string
	Value   int
	Max     int
	Target  int
	Percent bool // suffix "67%" instead of "2/3"
	Width   int
}

func (m Meter) View() string {
	var head string
	if m.Label != "" {
		head = lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label) + "  "
	}

	suffix := fmt.Sprintf("%d/%d", m.Value, m.Max)
	if m.Percent {
		suffix = fmt.Sprintf("%d%%", m.Value)
	}
	suffix = "  " + suffix

	barWidth := max(m.Width-lipgloss.Width(head)-len(suffix), 4)
	filled := 0
	if m.Max > 0 {
		filled = min(max(m.Value*barWidth/m.Max, 0), barWidth)
	}

	cells := make([]string, barWidth)
	for i := range cells {
		style := theme.ProgressEmpty
		if i < filled {
			style = theme.ProgressFilled
		}
		cells[i] = style.Render(" ")
	}
	if m.Target > 0 && m.Max > 0 {
		tick := min(m.Target*barWidth/m.Max, barWidth-1)
		style := theme.ProgressEmpty
		if tick < filled {
			style = theme.ProgressFilled
		}
		cells[tick] = style.Foreground(theme.Accent).Render("│")
	}

	return head + strings.Join(cells, "") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
