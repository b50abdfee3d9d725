package cmd

import (
	"fmt"
	"strings"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
)

// renderBudgetBar renders the per-person budget line with the status pill.
func renderBudgetBar(b model.BudgetState) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Budget  %s / %s per person  %s\n",
		cli.FormatMoney(b.PerPersonTotal),
		cli.FormatMoney(b.Target),
		cli.BudgetPill(b.PerPersonTotal, b.Target))
	fmt.Fprintf(&sb, "  Remaining  %s", cli.FormatMoney(b.Remaining()))
	return sb.String()
}

// renderStatusOverview renders the item progress bar and decision counts.
func renderStatusOverview(s model.StatusSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Items   %s  %d booked / %d total\n",
		cli.RenderProgressBar(s.Items.Booked, s.Items.Total, 24),
		s.Items.Booked, s.Items.Total)
	fmt.Fprintf(&sb, "          %s\n", cli.RenderBucketBar(s.Items, 24))
	fmt.Fprintf(&sb, "  Decisions  %d open, %d resolved\n",
		s.Decisions.Open, s.Decisions.Resolved)
	fmt.Fprintf(&sb, "  Health  %s", cli.StatusLabel(string(s.BudgetHealth)))
	return sb.String()
}
