package model

// BudgetState is the derived per-person budget breakdown. All figures are
// unrounded; formatting is a display concern.
type BudgetState struct {
	FlightTotal    float64
	HotelTotal     float64
	ActivityTotal  float64
	GrandTotal     float64
	PerPersonTotal float64
	Target         float64
}

// Remaining returns the per-person budget left under target, floored at 0.
func (b BudgetState) Remaining() float64 {
	if r := b.Target - b.PerPersonTotal; r > 0 {
		return r
	}
	return 0
}

// BudgetHealth classifies spend against the per-person target.
type BudgetHealth string

// Budget health bands. The summarizer uses a ±200 band around target; the
// display pill applies its own ±250 band on top of the raw totals.
const (
	BudgetUnder   BudgetHealth = "under"
	BudgetOnTrack BudgetHealth = "on-track"
	BudgetOver    BudgetHealth = "over"
)

// ItemCounts buckets items by status. Cancelled items count toward Total
// but land in none of the named buckets, so the buckets may sum to less
// than Total.
type ItemCounts struct {
	Total    int
	Booked   int
	Agreed   int
	Proposed int
	Idea     int
}

// DecisionCounts buckets decisions by status.
type DecisionCounts struct {
	Total    int
	Open     int
	Resolved int
}

// StatusSummary is the derived progress and health view of the trip.
// Counts are raw; consumers rendering ratios must guard a zero Total.
type StatusSummary struct {
	Items        ItemCounts
	Decisions    DecisionCounts
	BudgetHealth BudgetHealth
}
