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

func (a App) renderDecisionsTab(cw int) string {
	t := theme.Active
	doc := a.sess.Document()
	decs := doc.Decisions
	travelers := len(doc.Trip.Travelers)

	if len(decs) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No decisions on this trip.")
	}

	cursor := a.dec.cursor
	if cursor >= len(decs) {
		cursor = len(decs) - 1
	}

	var b strings.Builder
	for i, d := range decs {
		b.WriteString(a.renderDecisionCard(d, doc, i == cursor, travelers, cw))
		b.WriteString("\n")
	}

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(hintStyle.Render("  [j/k] select decision  [tab] cycle option  [enter] vote  [1-9] vote by number"))

	return b.String()
}

func (a App) renderDecisionCard(d model.Decision, doc model.TripData, selected bool, travelers, cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	questionStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	openStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)
	resolvedStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	winnerStyle := lipgloss.NewStyle().Foreground(t.Green)
	selOptStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)

	state := openStyle.Render("OPEN")
	if d.Status == model.DecisionResolved {
		state = resolvedStyle.Render("RESOLVED")
	}

	var body strings.Builder
	body.WriteString(questionStyle.Render(truncStr(d.Question, innerW-11)))
	body.WriteString("  ")
	body.WriteString(state)
	body.WriteString("\n")
	if d.Description != "" {
		body.WriteString(dimStyle.Render(truncStr(d.Description, innerW)))
		body.WriteString("\n")
	}
	body.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d votes in", d.TotalVotes(), travelers)))
	body.WriteString("\n\n")

	winner := trip.WinningOption(d)

	barMax := innerW - 44
	if barMax < 6 {
		barMax = 6
	}

	for j, opt := range d.Options {
		voteBar := ""
		if travelers > 0 {
			voteBar = strings.Repeat("█", opt.Votes*barMax/travelers)
		}

		line := fmt.Sprintf("%d. %-24s %s %d",
			j+1, truncStr(opt.Label, 24), cli.FormatMoneyExact(opt.EstCost), opt.Votes)

		switch {
		case selected && d.Status == model.DecisionOpen && j == a.dec.optCursor:
			body.WriteString(selOptStyle.Render("▸ " + line))
		case d.Status == model.DecisionResolved && opt.ID == winner.ID:
			body.WriteString(winnerStyle.Render("✓ " + line))
		default:
			body.WriteString(mutedStyle.Render("  " + line))
		}
		body.WriteString(" ")
		body.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Render(voteBar))
		body.WriteString("\n")

		if d.HasVoted(a.travelerID) && hasVoterOption(opt, a.travelerID) {
			body.WriteString(dimStyle.Render("    your vote"))
			body.WriteString("\n")
		}
	}

	if d.LinkedItemID != "" {
		if item, ok := trip.FindItem(doc, d.LinkedItemID); ok {
			body.WriteString("\n")
			body.WriteString(dimStyle.Render(fmt.Sprintf("Linked to %s (%s)",
				item.DisplayName(), cli.StatusLabel(string(item.ItemStatus())))))
			body.WriteString("\n")
		}
	}

	title := ""
	if selected {
		title = "▸ Decision"
	} else {
		title = "Decision"
	}
	return components.ContentCard(title, body.String(), cw)
}

func hasVoterOption(opt model.DecisionOption, travelerID string) bool {
	for _, v := range opt.Voters {
		if v == travelerID {
			return true
		}
	}
	return false
}
