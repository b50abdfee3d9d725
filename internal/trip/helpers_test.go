package trip

import (
	"testing"

	"tripdeck/internal/model"
)

// testDoc builds a small document with three travelers, one item per
// collection plus extras, one open decision, and one itinerary day.
func testDoc(t *testing.T) model.TripData {
	t.Helper()

	return model.TripData{
		Trip: model.Trip{
			ID:                    "trip-test",
			Name:                  "Test Trip",
			StartDate:             "2026-09-01",
			EndDate:               "2026-09-13",
			BudgetPerPersonTarget: 3250,
			Currency:              "USD",
			Travelers: []model.Traveler{
				{ID: "t1", Name: "You"},
				{ID: "t2", Name: "Friend 1"},
				{ID: "t3", Name: "Friend 2"},
			},
		},
		Itinerary: []model.ItineraryDay{
			{
				ID:          "day-1",
				Date:        "2026-09-03",
				DayNumber:   3,
				City:        "Melbourne",
				Title:       "Arrive Melbourne",
				PlanBullets: []string{"Check in", "Laneways walk"},
				LinkedItems: []string{"hotel-1", "act-booked", "act-idea"},
			},
		},
		Items: model.ItemCollections{
			Flights: []model.FlightItem{
				{
					ID: "flight-1", Segment: "LAX-MEL", Airline: "Qantas",
					From: "LAX", To: "MEL", Date: "2026-09-01",
					Status: model.StatusProposed, EstCostPerPerson: 750,
				},
			},
			Hotels: []model.HotelItem{
				{
					ID: "hotel-1", City: "Melbourne", Name: "Melbourne Marriott",
					Brand: "Marriott", Rooms: 2, Nights: 3,
					Status: model.StatusProposed, EstCostPerPerson: 308, EstTotalCost: 924,
				},
			},
			Activities: []model.ActivityItem{
				{
					ID: "act-booked", City: "Melbourne", Title: "Rams Game",
					Date: "2026-09-05", Status: model.StatusBooked, EstCostPerPerson: 0,
				},
				{
					ID: "act-idea", City: "Melbourne", Title: "Excursion",
					Date: "2026-09-12", Status: model.StatusIdea, EstCostPerPerson: 120,
				},
				{
					ID: "act-cancelled", City: "Sydney", Title: "Surf Lesson",
					Date: "2026-09-08", Status: model.StatusCancelled, EstCostPerPerson: 60,
				},
			},
		},
		Decisions: []model.Decision{
			{
				ID:           "dec-1",
				Question:     "Which excursion?",
				Description:  "One big day out.",
				Status:       model.DecisionOpen,
				LinkedItemID: "act-idea",
				Options: []model.DecisionOption{
					{ID: "opt-a", Label: "Island Cruise", EstCost: 110, Voters: []string{}},
					{ID: "opt-b", Label: "River Safari", EstCost: 130, Voters: []string{}},
				},
			},
		},
		ActivityLog: []model.LogEntry{
			{ID: "log-init", Message: "Trip planner initialized.", Kind: model.LogInfo},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

// findActivity fails the test if the activity is missing.
func findActivity(t *testing.T, doc model.TripData, id string) model.ActivityItem {
	t.Helper()
	for _, a := range doc.Items.Activities {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("activity %q not found", id)
	return model.ActivityItem{}
}
