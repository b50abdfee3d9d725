package model

// Traveler is one member of the group.
type Traveler struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Trip holds the static trip descriptors. Immutable after creation.
type Trip struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	StartDate             string     `json:"startDate"`
	EndDate               string     `json:"endDate"`
	BudgetPerPersonTarget float64    `json:"budgetPerPersonTarget"`
	Currency              string     `json:"currency"`
	Travelers             []Traveler `json:"travelers"`
}

// ItineraryDay is one day of the plan. It references items by id rather
// than owning them; ids that resolve to nothing are skipped by consumers.
type ItineraryDay struct {
	ID                      string   `json:"id"`
	Date                    string   `json:"date"`
	DayNumber               int      `json:"dayNumber"`
	City                    string   `json:"city"`
	Title                   string   `json:"title"`
	PlanBullets             []string `json:"planBullets"`
	LinkedItems             []string `json:"linkedItems"`
	EstCostPerPersonThisDay float64  `json:"estCostPerPersonThisDay,omitempty"`
	IsHighlight             bool     `json:"isHighlight,omitempty"`
	Note                    string   `json:"note,omitempty"`
}

// ItemCollections groups the three item lists. Item ids are unique across
// all three combined.
type ItemCollections struct {
	Flights    []FlightItem   `json:"flights"`
	Hotels     []HotelItem    `json:"hotels"`
	Activities []ActivityItem `json:"activities"`
}

// TripData is the root trip document. Every mutating operation takes the
// current document and returns a fresh one; nothing is modified in place.
type TripData struct {
	Trip        Trip            `json:"trip"`
	Itinerary   []ItineraryDay  `json:"itinerary"`
	Items       ItemCollections `json:"items"`
	Decisions   []Decision      `json:"decisions"`
	ActivityLog []LogEntry      `json:"activityLog"`
}

// AllItems returns every item across the three collections, flights first.
func (d TripData) AllItems() []Item {
	out := make([]Item, 0, len(d.Items.Flights)+len(d.Items.Hotels)+len(d.Items.Activities))
	for _, f := range d.Items.Flights {
		out = append(out, f)
	}
	for _, h := range d.Items.Hotels {
		out = append(out, h)
	}
	for _, a := range d.Items.Activities {
		out = append(out, a)
	}
	return out
}
