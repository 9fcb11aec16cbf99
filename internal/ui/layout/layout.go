package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/ui/theme"
)

const (
	MinWidth  = 64
	MinHeight = 20

	// CompactContentHeight is the content height below which screens drop
	// secondary panels.
	CompactContentHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsCompactHeight reports whether a content area is too short for
// secondary panels.
func IsCompactHeight(contentHeight int) bool {
	return contentHeight < CompactContentHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf("Please enlarge the window to at least %d x %d\n(currently %d x %d)",
			MinWidth, MinHeight, width, height))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the top bar: brand left, title centered, status right.
func RenderHeader(brand, title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" " + brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status + " ")

	inner := max(width-2, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	gapL := max((inner-cw)/2-lw, 1)
	gapR := max(inner-lw-gapL-cw-rw, 1)

	return bar.Width(width).Render(left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right)
}

// RenderFooter draws the key hint bar. Hints that do not fit are dropped
// from the front so the global ones at the end stay visible.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}

	line := " " + strings.Join(parts, "   ")
	for len(parts) > 1 && lipgloss.Width(line) > max(width-2, 0) {
		parts = parts[1:]
		line = " " + strings.Join(parts, "   ")
	}

	return bar.Width(width).Render(line)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
