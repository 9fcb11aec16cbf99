package components

import "github.com/abuammar/academy/internal/ui/theme"

// ContentWidth returns the width shared by stacked cards and panels so
// their borders line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border card at content width cw.
func Card(content string, cw int) string {
	return theme.Card.Width(cw - 2).Render(content)
}
