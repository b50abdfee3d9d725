package trip

import "tripdeck/internal/model"

// healthBand is the summarizer's tolerance around the budget target.
// The TUI status pill deliberately uses its own, wider band.
const healthBand = 200

// Summarize derives item/decision counts and budget health from the
// document and a previously computed budget. Cancelled items count toward
// Items.Total but none of the named buckets.
func Summarize(doc model.TripData, budget model.BudgetState) model.StatusSummary {
	var summary model.StatusSummary

	for _, item := range doc.AllItems() {
		summary.Items.Total++
		switch item.ItemStatus() {
		case model.StatusBooked:
			summary.Items.Booked++
		case model.StatusAgreed:
			summary.Items.Agreed++
		case model.StatusProposed:
			summary.Items.Proposed++
		case model.StatusIdea:
			summary.Items.Idea++
		}
	}

	for _, d := range doc.Decisions {
		summary.Decisions.Total++
		if d.Status == model.DecisionResolved {
			summary.Decisions.Resolved++
		} else {
			summary.Decisions.Open++
		}
	}

	switch {
	case budget.PerPersonTotal < budget.Target-healthBand:
		summary.BudgetHealth = model.BudgetUnder
	case budget.PerPersonTotal > budget.Target+healthBand:
		summary.BudgetHealth = model.BudgetOver
	default:
		summary.BudgetHealth = model.BudgetOnTrack
	}

	return summary
}
