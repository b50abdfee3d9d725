package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"tripdeck/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. flash is a transient
// message shown in the middle (advisor text, confirmations).
func RenderStatusBar(width int, traveler, pill, flash string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	flashStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright)

	left := " [?]help  [q]uit"
	right := ""
	if traveler != "" {
		right = fmt.Sprintf("%s · %s ", traveler, pill)
	} else if pill != "" {
		right = pill + " "
	}

	middle := ""
	if flash != "" {
		middle = flashStyle.Render(flash)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	lpad := padding / 2
	rpad := padding - lpad

	bar := left
	for i := 0; i < lpad; i++ {
		bar += " "
	}
	bar += middle
	for i := 0; i < rpad; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
