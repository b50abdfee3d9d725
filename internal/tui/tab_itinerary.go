package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/trip"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"
)

func (a App) renderItineraryTab(cw, contentH int) string {
	t := theme.Active
	doc := a.sess.Document()
	days := doc.Itinerary

	if len(days) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No itinerary days yet.")
	}

	cursor := a.itin.cursor
	if cursor >= len(days) {
		cursor = len(days) - 1
	}

	if a.isCompactLayout() {
		return a.renderDayList(days, cursor, cw, contentH)
	}

	halves := components.LayoutRow(cw, 2)
	list := a.renderDayList(days, cursor, halves[0], contentH)
	detail := a.renderDayDetail(days[cursor], halves[1])
	return components.CardRow([]string{list, detail})
}

func (a App) renderDayList(days []model.ItineraryDay, cursor, w, contentH int) string {
	t := theme.Active

	selStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	highlightStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	innerW := components.CardInnerWidth(w)

	// Keep cursor visible inside the card height
	visible := contentH - 4
	if visible < 3 {
		visible = 3
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(days) {
		end = len(days)
	}

	var body strings.Builder
	for i := start; i < end; i++ {
		day := days[i]
		line := truncStr(fmt.Sprintf("Day %-2d %s  %s", day.DayNumber,
			cli.FormatDate(day.Date), day.City), innerW-2)
		switch {
		case i == cursor:
			body.WriteString(selStyle.Render("▸ " + line))
		case day.IsHighlight:
			body.WriteString(highlightStyle.Render("★ ") + rowStyle.Render(line))
		default:
			body.WriteString(rowStyle.Render("  " + line))
		}
		body.WriteString("\n")
	}

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	body.WriteString(hintStyle.Render("[a]gree  [b]ook  [p]ivot"))

	return components.ContentCard(
		fmt.Sprintf("Days (%d)", len(days)),
		body.String(),
		w,
	)
}

func (a App) renderDayDetail(day model.ItineraryDay, w int) string {
	t := theme.Active
	doc := a.sess.Document()
	innerW := components.CardInnerWidth(w)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	costStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var body strings.Builder
	body.WriteString(titleStyle.Render(truncStr(day.Title, innerW)))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(fmt.Sprintf("%s · %s", cli.FormatDate(day.Date), day.City)))
	body.WriteString("\n\n")

	for _, bullet := range day.PlanBullets {
		body.WriteString(mutedStyle.Render(truncStr("• "+bullet, innerW)))
		body.WriteString("\n")
	}

	items := trip.ResolveLinkedItems(doc, day)
	if len(items) > 0 {
		body.WriteString("\n")
		body.WriteString(dimStyle.Render("Linked items"))
		body.WriteString("\n")
		for _, item := range items {
			statusStyle := lipgloss.NewStyle().Foreground(statusColor(item.ItemStatus()))
			body.WriteString(fmt.Sprintf("%s %s %s\n",
				statusStyle.Render(fmt.Sprintf("%-9s", cli.StatusLabel(string(item.ItemStatus())))),
				mutedStyle.Render(truncStr(item.DisplayName(), innerW-20)),
				costStyle.Render(cli.FormatMoneyExact(item.CostPerPerson()))))
		}
	}

	if day.EstCostPerPersonThisDay > 0 {
		body.WriteString("\n")
		body.WriteString(costStyle.Render(fmt.Sprintf("Est %s per person this day",
			cli.FormatMoneyExact(day.EstCostPerPersonThisDay))))
		body.WriteString("\n")
	}

	if day.Note != "" {
		body.WriteString("\n")
		for _, line := range strings.Split(day.Note, "\n") {
			body.WriteString(dimStyle.Render(truncStr(line, innerW)))
			body.WriteString("\n")
		}
	}

	return components.ContentCard(fmt.Sprintf("Day %d", day.DayNumber), body.String(), w)
}

// statusColor maps an item status to the active theme's palette.
func statusColor(status model.ItemStatus) lipgloss.Color {
	t := theme.Active
	switch status {
	case model.StatusBooked:
		return t.Green
	case model.StatusAgreed:
		return t.Accent
	case model.StatusProposed:
		return t.Blue
	case model.StatusCancelled:
		return t.Red
	default: // idea
		return t.TextMuted
	}
}
