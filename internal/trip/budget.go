// Package trip implements the pure reducer core over the trip document:
// budget totals, status summaries, vote resolution, and item mutations.
// Every operation takes the current document and returns a new one; missing
// ids are silent no-ops, never errors.
package trip

import "tripdeck/internal/model"

// ComputeBudget derives the per-person budget breakdown. Actual costs take
// precedence over estimates; items with neither contribute zero. All costs
// in the document are already per person, so the per-person total equals
// the grand total.
func ComputeBudget(doc model.TripData) model.BudgetState {
	var flightTotal, hotelTotal, activityTotal float64

	for _, f := range doc.Items.Flights {
		flightTotal += f.CostPerPerson()
	}
	for _, h := range doc.Items.Hotels {
		hotelTotal += h.CostPerPerson()
	}
	for _, a := range doc.Items.Activities {
		activityTotal += a.CostPerPerson()
	}

	grandTotal := flightTotal + hotelTotal + activityTotal

	return model.BudgetState{
		FlightTotal:    flightTotal,
		HotelTotal:     hotelTotal,
		ActivityTotal:  activityTotal,
		GrandTotal:     grandTotal,
		PerPersonTotal: grandTotal,
		Target:         doc.Trip.BudgetPerPersonTarget,
	}
}
