package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"
)

func (a App) renderFeedTab(cw, contentH int) string {
	t := theme.Active
	doc := a.sess.Document()
	log := doc.ActivityLog

	if len(log) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  Nothing logged yet.")
	}

	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	innerW := components.CardInnerWidth(cw)

	visible := contentH - 4
	if visible < 3 {
		visible = 3
	}

	// Newest first, scrolled by feed.scroll entries
	start := a.feed.scroll
	if start > len(log)-1 {
		start = len(log) - 1
	}

	now := time.Now()
	var body strings.Builder
	shown := 0
	for i := len(log) - 1 - start; i >= 0 && shown < visible; i-- {
		e := log[i]
		glyphStyle := lipgloss.NewStyle().Foreground(feedColor(e.Kind))
		body.WriteString(fmt.Sprintf("%s %s %s\n",
			glyphStyle.Render(feedGlyph(e.Kind)),
			msgStyle.Render(truncStr(e.Message, innerW-14)),
			timeStyle.Render(cli.TimeAgo(e.Timestamp, now))))
		shown++
	}

	return components.ContentCard(
		fmt.Sprintf("Activity (%d entries)", len(log)),
		body.String(),
		cw,
	)
}

func feedGlyph(kind model.LogKind) string {
	switch kind {
	case model.LogBooking:
		return "✈"
	case model.LogDecision:
		return "✓"
	default:
		return "•"
	}
}

func feedColor(kind model.LogKind) lipgloss.Color {
	t := theme.Active
	switch kind {
	case model.LogBooking:
		return t.Green
	case model.LogDecision:
		return t.Accent
	default:
		return t.TextMuted
	}
}
