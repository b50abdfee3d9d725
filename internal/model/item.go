// Package model defines the trip document and its domain types.
package model

// ItemStatus is the lifecycle state of a bookable item.
type ItemStatus string

// Item lifecycle states, from loose idea to confirmed booking.
const (
	StatusIdea      ItemStatus = "idea"
	StatusProposed  ItemStatus = "proposed"
	StatusAgreed    ItemStatus = "agreed"
	StatusBooked    ItemStatus = "booked"
	StatusCancelled ItemStatus = "cancelled"
)

// Item is the common capability shared by flights, hotels, and activities.
// Costs are already per person; hotel totals are divided by group size
// upstream when the seed document is built.
type Item interface {
	ItemID() string
	ItemStatus() ItemStatus
	// DisplayName is the human label used in log messages and cards.
	DisplayName() string
	// CostPerPerson returns the actual cost when set, otherwise the estimate.
	CostPerPerson() float64
}

// FlightItem is one flight segment for the whole group.
type FlightItem struct {
	ID                  string     `json:"id"`
	Segment             string     `json:"segment"`
	Airline             string     `json:"airline"`
	From                string     `json:"from"`
	To                  string     `json:"to"`
	Date                string     `json:"date"`
	Status              ItemStatus `json:"status"`
	EstCostPerPerson    float64    `json:"estCostPerPerson"`
	ActualCostPerPerson *float64   `json:"actualCostPerPerson"`
	BookingLink         string     `json:"bookingLink,omitempty"`
	Notes               string     `json:"notes,omitempty"`
}

// HotelItem is a hotel stay. EstTotalCost and EstCostPerPerson are
// precomputed from rooms, nights, and rate when the document is seeded.
type HotelItem struct {
	ID                     string     `json:"id"`
	City                   string     `json:"city"`
	Name                   string     `json:"name"`
	Brand                  string     `json:"brand"`
	Address                string     `json:"address"`
	CheckIn                string     `json:"checkIn"`
	CheckOut               string     `json:"checkOut"`
	Rooms                  int        `json:"rooms"`
	Nights                 int        `json:"nights"`
	BaseRatePerRoomPerNight float64   `json:"baseRatePerRoomPerNight"`
	UsesExploreRate        bool       `json:"usesExploreRate"`
	ExploreDiscountPercent float64    `json:"exploreDiscountPercent,omitempty"`
	IsAllInclusive         bool       `json:"isAllInclusive,omitempty"`
	EstTotalCost           float64    `json:"estTotalCost"`
	Status                 ItemStatus `json:"status"`
	EstCostPerPerson       float64    `json:"estCostPerPerson"`
	ActualCostPerPerson    *float64   `json:"actualCostPerPerson"`
	BookingLink            string     `json:"bookingLink,omitempty"`
	Notes                  string     `json:"notes,omitempty"`
}

// ActivityItem is an activity or local transport entry.
type ActivityItem struct {
	ID                  string     `json:"id"`
	City                string     `json:"city"`
	Title               string     `json:"title"`
	Date                string     `json:"date"`
	Status              ItemStatus `json:"status"`
	EstCostPerPerson    float64    `json:"estCostPerPerson"`
	ActualCostPerPerson *float64   `json:"actualCostPerPerson"`
	BookingLink         string     `json:"bookingLink,omitempty"`
	Notes               string     `json:"notes,omitempty"`
}

func (f FlightItem) ItemID() string         { return f.ID }
func (f FlightItem) ItemStatus() ItemStatus { return f.Status }
func (f FlightItem) DisplayName() string    { return f.Airline }

func (h HotelItem) ItemID() string         { return h.ID }
func (h HotelItem) ItemStatus() ItemStatus { return h.Status }
func (h HotelItem) DisplayName() string    { return h.Name }

func (a ActivityItem) ItemID() string         { return a.ID }
func (a ActivityItem) ItemStatus() ItemStatus { return a.Status }
func (a ActivityItem) DisplayName() string    { return a.Title }

func (f FlightItem) CostPerPerson() float64 {
	return coalesceCost(f.ActualCostPerPerson, f.EstCostPerPerson)
}

func (h HotelItem) CostPerPerson() float64 {
	return coalesceCost(h.ActualCostPerPerson, h.EstCostPerPerson)
}

func (a ActivityItem) CostPerPerson() float64 {
	return coalesceCost(a.ActualCostPerPerson, a.EstCostPerPerson)
}

func coalesceCost(actual *float64, est float64) float64 {
	if actual != nil {
		return *actual
	}
	return est
}
