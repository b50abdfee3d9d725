package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripdeck/internal/cli"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	doc := a.sess.Document()
	budget := a.sess.Budget()
	summary := a.sess.Summary()
	var b strings.Builder

	// Row 1: Metric cards
	remainDelta := ""
	if budget.Remaining() > 0 {
		remainDelta = cli.FormatMoney(budget.Remaining()) + " left"
	} else {
		remainDelta = "target reached"
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Per Person", cli.FormatMoney(budget.PerPersonTotal), remainDelta},
		{"Target", cli.FormatMoney(budget.Target), doc.Trip.Currency},
		{"Group Total", cli.FormatMoney(budget.GrandTotal), fmt.Sprintf("%d travelers", len(doc.Trip.Travelers))},
		{"Health", cli.StatusLabel(string(summary.BudgetHealth)), cli.PillLabel(budget.PerPersonTotal, budget.Target)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Spend bars per category
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 34
	if barW < 10 {
		barW = 10
	}
	denom := budget.Target
	if denom <= 0 {
		denom = 1
	}

	var spendBody strings.Builder
	spendBody.WriteString(components.BudgetBar("Flights", budget.FlightTotal/denom,
		cli.FormatMoneyExact(budget.FlightTotal), 10, barW))
	spendBody.WriteString("\n")
	spendBody.WriteString(components.BudgetBar("Hotels", budget.HotelTotal/denom,
		cli.FormatMoneyExact(budget.HotelTotal), 10, barW))
	spendBody.WriteString("\n")
	spendBody.WriteString(components.BudgetBar("Activities", budget.ActivityTotal/denom,
		cli.FormatMoneyExact(budget.ActivityTotal), 10, barW))
	spendBody.WriteString("\n")
	spendBody.WriteString(components.BudgetBar("Total", budget.PerPersonTotal/denom,
		fmt.Sprintf("%s / %s", cli.FormatMoney(budget.PerPersonTotal), cli.FormatMoney(budget.Target)), 10, barW))

	b.WriteString(components.ContentCard("Per-Person Spend", spendBody.String(), cw))
	b.WriteString("\n")

	// Row 3: Daily estimated cost chart
	if len(doc.Itinerary) > 0 {
		vals := make([]float64, len(doc.Itinerary))
		labels := make([]string, len(doc.Itinerary))
		for i, day := range doc.Itinerary {
			vals[i] = day.EstCostPerPersonThisDay
			labels[i] = strconv.Itoa(day.DayNumber)
		}
		chartH := 8
		if a.isCompactLayout() {
			chartH = 6
		}
		b.WriteString(components.ContentCard(
			"Estimated Cost by Day (per person)",
			components.BarChart(vals, labels, t.Blue, innerW, chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 4: Planning progress + decisions
	halves := components.LayoutRow(cw, 2)

	var progBody strings.Builder
	booked := summary.Items.Booked
	total := summary.Items.Total
	pct := 0.0
	if total > 0 {
		pct = float64(booked) / float64(total)
	}
	progBody.WriteString(components.ProgressBar(pct, components.CardInnerWidth(halves[0])-6))
	progBody.WriteString("\n")
	progBody.WriteString(renderCountLine("Booked", summary.Items.Booked, t.Green))
	progBody.WriteString(renderCountLine("Agreed", summary.Items.Agreed, t.Accent))
	progBody.WriteString(renderCountLine("Proposed", summary.Items.Proposed, t.Blue))
	progBody.WriteString(renderCountLine("Ideas", summary.Items.Idea, t.TextMuted))

	var decBody strings.Builder
	decBody.WriteString(renderCountLine("Open", summary.Decisions.Open, t.Yellow))
	decBody.WriteString(renderCountLine("Resolved", summary.Decisions.Resolved, t.Green))
	if summary.Decisions.Open > 0 {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		decBody.WriteString(hintStyle.Render("Press [d] to vote"))
		decBody.WriteString("\n")
	}

	progCard := components.ContentCard(fmt.Sprintf("Planning Progress (%d items)", total), progBody.String(), halves[0])
	decCard := components.ContentCard("Decisions", decBody.String(), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(fmt.Sprintf("Planning Progress (%d items)", total), progBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Decisions", decBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{progCard, decCard}))
	}

	return b.String()
}

func renderCountLine(label string, count int, color lipgloss.Color) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	countStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return fmt.Sprintf("%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-9s", label)),
		countStyle.Render(strconv.Itoa(count)))
}
