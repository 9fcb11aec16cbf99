package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abuammar/academy/internal/ui/theme"
)

// RenderBanner returns the academy name letter-spaced inside a double
// border. Falls back to the plain name when it would not fit in width.
func RenderBanner(name string, width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	spaced := strings.Join(strings.Split(strings.ToUpper(name), ""), " ")
	if lipgloss.Width(spaced)+6 > width {
		return style.Render(name)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 2).
		Render(style.Render(spaced))
}
