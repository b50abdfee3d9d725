// Package seed holds the hardcoded initial trip document. It is static
// configuration: the core trusts its shape and does not validate it.
package seed

import (
	"time"

	"tripdeck/internal/model"
)

// Trip returns a fresh copy of the initial trip document.
func Trip() model.TripData {
	return model.TripData{
		Trip: model.Trip{
			ID:                    "rams-aus-fiji-2026",
			Name:                  "Rams + Australia + Fiji 2026",
			StartDate:             "2026-09-01",
			EndDate:               "2026-09-13",
			BudgetPerPersonTarget: 3250,
			Currency:              "USD",
			Travelers: []model.Traveler{
				{ID: "traveler1", Name: "You"},
				{ID: "traveler2", Name: "Friend 1"},
				{ID: "traveler3", Name: "Friend 2"},
			},
		},
		ActivityLog: []model.LogEntry{
			{
				ID:        "log-init",
				Message:   "Trip planner initialized. Let's get the Rams game sorted!",
				Timestamp: time.Now(),
				Kind:      model.LogInfo,
			},
		},
		Itinerary: []model.ItineraryDay{
			{
				ID: "day1", Date: "2026-09-01", DayNumber: 1,
				City: "In Flight", Title: "LAX → Melbourne (Overnight Flight)",
				PlanBullets: []string{
					"Evening departure from LAX",
					"Sleep on plane",
					"Cross dateline",
				},
				LinkedItems: []string{"flight-lax-mel"},
			},
			{
				ID: "day2", Date: "2026-09-02", DayNumber: 2,
				City: "In Flight", Title: "Continue to Melbourne",
				PlanBullets: []string{"In flight", "Land morning of 9/3 local time"},
				LinkedItems: []string{"flight-lax-mel"},
			},
			{
				ID: "day3", Date: "2026-09-03", DayNumber: 3,
				City: "Melbourne", Title: "Arrive Melbourne – Settle In",
				PlanBullets: []string{
					"Arrive MEL morning/afternoon",
					"Pick up transfer to CBD",
					"Check in Melbourne Marriott Hotel (CBD)",
					"Walk laneways (Hosier Lane, Degraves St)",
					"Coffee culture exploration",
					"Dinner in CBD or Fitzroy",
				},
				LinkedItems:             []string{"hotel-melbourne", "transport-mel-transfer", "activity-melbourne-laneways"},
				EstCostPerPersonThisDay: 35,
			},
			{
				ID: "day4", Date: "2026-09-04", DayNumber: 4,
				City: "Melbourne", Title: "Melbourne Culture Day",
				PlanBullets: []string{
					"Queen Victoria Market (morning)",
					"Southbank & Yarra River walk",
					"Walk around MCG exterior",
					"Pre-game night: casual bars or early rest",
				},
				LinkedItems:             []string{"hotel-melbourne"},
				EstCostPerPersonThisDay: 20,
			},
			{
				ID: "day5", Date: "2026-09-05", DayNumber: 5,
				City: "Melbourne", Title: "RAMS GAME DAY at MCG 🏈",
				PlanBullets: []string{
					"Morning: Head to Melbourne Cricket Ground",
					"Midday: LA Rams game at MCG (tickets already purchased)",
					"Evening: Post-game celebration in CBD/Southbank",
				},
				LinkedItems:             []string{"hotel-melbourne", "activity-rams-game"},
				EstCostPerPersonThisDay: 15,
				IsHighlight:             true,
			},
			{
				ID: "day6", Date: "2026-09-06", DayNumber: 6,
				City: "Sydney", Title: "Melbourne → Sydney",
				PlanBullets: []string{
					"Check out Melbourne Marriott",
					"Fly Melbourne → Sydney (~1.5 hours)",
					"Transfer to Circular Quay",
					"Check in Sydney Harbour Marriott",
					"Evening: Circular Quay sunset, dinner in The Rocks",
				},
				LinkedItems:             []string{"flight-mel-syd", "transport-syd-transfer", "hotel-sydney"},
				EstCostPerPersonThisDay: 45,
			},
			{
				ID: "day7", Date: "2026-09-07", DayNumber: 7,
				City: "Sydney", Title: "Opera House & Harbour",
				PlanBullets: []string{
					"Morning: Sydney Opera House guided tour",
					"Midday: Royal Botanic Garden, Mrs. Macquarie's Chair",
					"Afternoon: Optional harbour cruise",
					"Evening: Nice dinner, harbourfront bar",
				},
				LinkedItems:             []string{"hotel-sydney", "activity-opera-house"},
				EstCostPerPersonThisDay: 50,
			},
			{
				ID: "day8", Date: "2026-09-08", DayNumber: 8,
				City: "Sydney", Title: "Bondi Beach Day",
				PlanBullets: []string{
					"Train to Bondi Junction → bus/rideshare to Bondi Beach",
					"Beach time, swim, optional surf lessons",
					"Bondi to Coogee coastal walk (6km, cliffs, ocean pools)",
					"Late lunch in Bondi or Coogee",
					"Return to Circular Quay",
				},
				LinkedItems:             []string{"hotel-sydney", "activity-bondi"},
				EstCostPerPersonThisDay: 20,
			},
			{
				ID: "day9", Date: "2026-09-09", DayNumber: 9,
				City: "Sydney", Title: "Taronga Zoo & Sydney Wrap",
				PlanBullets: []string{
					"Ferry from Circular Quay to Taronga Zoo",
					"Zoo visit with harbour skyline views",
					"Return to city, explore Darling Harbour",
					"Final Sydney dinner and drinks",
				},
				LinkedItems:             []string{"hotel-sydney", "activity-taronga"},
				EstCostPerPersonThisDay: 70,
			},
			{
				ID: "day10", Date: "2026-09-10", DayNumber: 10,
				City: "Fiji", Title: "Sydney → Fiji → Resort",
				PlanBullets: []string{
					"Morning: Fly Sydney → Nadi (~3.5–4 hours)",
					"Afternoon: Shuttle transfer to Resort (Coral Coast/Momi)",
					"Evening: Check in, pool/beach, resort dinner, swim-up bar",
				},
				LinkedItems: []string{"flight-syd-nan", "transport-nan-transfer", "hotel-fiji"},
				Note:        "All-inclusive meals start",
			},
			{
				ID: "day11", Date: "2026-09-11", DayNumber: 11,
				City: "Fiji", Title: "Full Fiji Resort Day",
				PlanBullets: []string{
					"3 pools including adults-only infinity pool",
					"Beach & lagoon access, kayaking, snorkeling",
					"Optional Quan Spa treatment",
					"Cultural dinner or themed night at resort",
				},
				LinkedItems: []string{"hotel-fiji"},
				Note:        "All-inclusive",
			},
			{
				ID: "day12", Date: "2026-09-12", DayNumber: 12,
				City: "Fiji", Title: "Fiji Adventure / Excursion Day",
				PlanBullets: []string{
					"Choose one major excursion:",
					"- Option 1: Full-day island cruise (snorkel, village, BBQ)",
					"- Option 2: Sigatoka River safari",
					"- Option 3: Zipline/ATV adventure",
					"Evening: Final resort night, big dinner, storytelling",
				},
				LinkedItems:             []string{"hotel-fiji", "activity-fiji-excursion"},
				EstCostPerPersonThisDay: 120,
			},
			{
				ID: "day13", Date: "2026-09-13", DayNumber: 13,
				City: "In Flight", Title: "Fiji → LAX (Return Home)",
				PlanBullets: []string{
					"Morning: Resort breakfast, transfer to Nadi",
					"Fly Nadi → LAX (~10–11 hours)",
					"Arrive same day (cross dateline)",
				},
				LinkedItems: []string{"flight-nan-lax"},
			},
		},
		Items: model.ItemCollections{
			Flights: []model.FlightItem{
				{
					ID: "flight-lax-mel", Segment: "LAX-MEL",
					Airline: "Qantas / United / Fiji Airways",
					From:    "Los Angeles (LAX)", To: "Melbourne (MEL)",
					Date:             "2026-09-01",
					EstCostPerPerson: 750,
					Status:           model.StatusProposed,
					BookingLink:      "https://www.skyscanner.com/routes/lax/mela/los-angeles-international-to-melbourne.html",
					Notes:            "Book early for best rates; check Fiji Airways for 1-stop deals",
				},
				{
					ID: "flight-mel-syd", Segment: "MEL-SYD",
					Airline: "Jetstar / Qantas / Virgin",
					From:    "Melbourne (MEL)", To: "Sydney (SYD)",
					Date:             "2026-09-06",
					EstCostPerPerson: 115,
					Status:           model.StatusProposed,
					BookingLink:      "https://www.skyscanner.com/routes/mela/syd/melbourne-to-sydney.html",
					Notes:            "Jetstar often has $37–90 sales; book early",
				},
				{
					ID: "flight-syd-nan", Segment: "SYD-NAN",
					Airline: "Fiji Airways / Qantas",
					From:    "Sydney (SYD)", To: "Nadi (NAN)",
					Date:             "2026-09-10",
					EstCostPerPerson: 230,
					Status:           model.StatusProposed,
					BookingLink:      "https://www.expedia.com/lp/flights/syd/nan/sydney-to-nadi",
					Notes:            "Fiji Airways often best; check for packages with hotel",
				},
				{
					ID: "flight-nan-lax", Segment: "NAN-LAX",
					Airline: "Fiji Airways",
					From:    "Nadi (NAN)", To: "Los Angeles (LAX)",
					Date:             "2026-09-13",
					EstCostPerPerson: 900,
					Status:           model.StatusProposed,
					BookingLink:      "https://www.fijiairways.com",
					Notes:            "Direct option; watch for sales",
				},
			},
			Hotels: []model.HotelItem{
				{
					ID: "hotel-melbourne", City: "Melbourne",
					Name:    "Melbourne Marriott Hotel (CBD)",
					Brand:   "Marriott",
					Address: "Exhibition & Lonsdale Street, Melbourne VIC",
					CheckIn: "2026-09-03", CheckOut: "2026-09-06",
					Rooms: 2, Nights: 3,
					BaseRatePerRoomPerNight: 220,
					UsesExploreRate:         true,
					ExploreDiscountPercent:  30,
					EstTotalCost:            924,
					EstCostPerPerson:        308,
					Status:                  model.StatusProposed,
					BookingLink:             "https://www.marriott.com/en-us/hotels/melmc-melbourne-marriott-hotel/overview/",
					Notes:                   "With Explore, expect ~$154/room/night; central CBD location",
				},
				{
					ID: "hotel-sydney", City: "Sydney",
					Name:    "Sydney Harbour Marriott Hotel at Circular Quay",
					Brand:   "Marriott",
					Address: "30 Pitt Street, Circular Quay, Sydney NSW",
					CheckIn: "2026-09-06", CheckOut: "2026-09-09",
					Rooms: 2, Nights: 3,
					BaseRatePerRoomPerNight: 250,
					UsesExploreRate:         true,
					ExploreDiscountPercent:  30,
					EstTotalCost:            1050,
					EstCostPerPerson:        350,
					Status:                  model.StatusProposed,
					BookingLink:             "https://www.marriott.com/en-us/hotels/sydmc-sydney-harbour-marriott-hotel-at-circular-quay/overview/",
					Notes:                   "5-min walk to Opera House; prime location; Explore discount critical",
				},
				{
					ID: "hotel-fiji", City: "Fiji",
					Name:    "Fiji Marriott Resort Momi Bay (All-Inclusive)",
					Brand:   "Marriott",
					Address: "Momi Bay, Coral Coast, Fiji",
					CheckIn: "2026-09-10", CheckOut: "2026-09-13",
					Rooms: 2, Nights: 3,
					BaseRatePerRoomPerNight: 400,
					UsesExploreRate:         true,
					ExploreDiscountPercent:  25,
					IsAllInclusive:          true,
					EstTotalCost:            1800,
					EstCostPerPerson:        600,
					Status:                  model.StatusProposed,
					BookingLink:             "https://www.marriott.com/offers/all-inclusive-OFF-60280/NANMC-nanmc-fiji-marriott-resort-momi-bay",
					Notes:                   "All meals included; overwater villas available; package includes airport transfer",
				},
			},
			Activities: []model.ActivityItem{
				{
					ID: "transport-mel-transfer", City: "Melbourne",
					Title: "Airport Transfer (SkyBus/Uber)", Date: "2026-09-03",
					EstCostPerPerson: 20,
					Status:           model.StatusProposed,
					BookingLink:      "https://www.skybus.com.au/",
					Notes:            "SkyBus is ~$22 AUD; Uber split 3 ways is similar.",
				},
				{
					ID: "activity-melbourne-laneways", City: "Melbourne",
					Title: "Laneways & Coffee Culture Walk", Date: "2026-09-03",
					EstCostPerPerson: 0,
					Status:           model.StatusAgreed,
					Notes:            "Self-guided; free activity",
				},
				{
					ID: "activity-rams-game", City: "Melbourne",
					Title: "LA Rams Game at MCG", Date: "2026-09-05",
					EstCostPerPerson: 0,
					Status:           model.StatusBooked,
					BookingLink:      "https://www.therams.com",
					Notes:            "Tickets already purchased; not counted in budget",
				},
				{
					ID: "transport-syd-transfer", City: "Sydney",
					Title: "Airport Transfer (Train/Uber)", Date: "2026-09-06",
					EstCostPerPerson: 15,
					Status:           model.StatusProposed,
					Notes:            "Train to Circular Quay is fast; Uber split is convenient.",
				},
				{
					ID: "activity-opera-house", City: "Sydney",
					Title: "Sydney Opera House Tour", Date: "2026-09-07",
					EstCostPerPerson: 30,
					Status:           model.StatusProposed,
					BookingLink:      "https://www.sydneyoperahouse.com",
					Notes:            "Guided tour is essential",
				},
				{
					ID: "activity-bondi", City: "Sydney",
					Title: "Bondi Surf & Coastal Walk", Date: "2026-09-08",
					EstCostPerPerson: 0,
					Status:           model.StatusIdea,
					Notes:            "Cost only if renting boards",
				},
				{
					ID: "activity-taronga", City: "Sydney",
					Title: "Taronga Zoo Entry + Ferry", Date: "2026-09-09",
					EstCostPerPerson: 50,
					Status:           model.StatusProposed,
					BookingLink:      "https://taronga.org.au/sydney-zoo",
					Notes:            "Buy online for discount",
				},
				{
					ID: "transport-nan-transfer", City: "Fiji",
					Title: "Nadi Airport Transfer (Round Trip)", Date: "2026-09-10",
					EstCostPerPerson: 30,
					Status:           model.StatusProposed,
					Notes:            "Private driver or shuttle split 3 ways.",
				},
				{
					ID: "activity-fiji-excursion", City: "Fiji",
					Title: "Major Fiji Excursion (TBD)", Date: "2026-09-12",
					EstCostPerPerson: 120,
					Status:           model.StatusIdea,
					Notes:            "Need to vote on option",
				},
			},
		},
		Decisions: []model.Decision{
			{
				ID:           "decision-fiji-hotel",
				Question:     "Fiji Resort: Splurge vs Save?",
				Description:  "Momi Bay ($600/pp) is premium, but we can save ~$120/pp at Warwick or Naviti.",
				Status:       model.DecisionOpen,
				LinkedItemID: "hotel-fiji",
				Options: []model.DecisionOption{
					{
						ID: "opt-momi", Label: "Marriott Momi Bay", EstCost: 600,
						Pros:  []string{"Overwater villas", "Modern luxury", "Marriott pts"},
						Cons:  []string{"Expensive", "Food costs high if not inclusive"},
						Votes: 1, Voters: []string{"traveler1"},
					},
					{
						ID: "opt-warwick", Label: "The Warwick Fiji", EstCost: 480,
						Pros:   []string{"Cheaper All-Inclusive", "Classic vibe", "Adults-only pool"},
						Cons:   []string{"Older property", "90 min drive"},
						Voters: []string{},
					},
					{
						ID: "opt-naviti", Label: "Naviti Resort", EstCost: 450,
						Pros:   []string{"Budget friendly", "Unlimited drinks"},
						Cons:   []string{"Dated rooms", "Many kids"},
						Voters: []string{},
					},
				},
			},
			{
				ID:           "decision-fiji-excursion",
				Question:     "Which Fiji Adventure?",
				Description:  "We have one full day for a big excursion. What's the vibe?",
				Status:       model.DecisionOpen,
				LinkedItemID: "activity-fiji-excursion",
				Options: []model.DecisionOption{
					{
						ID: "opt1", Label: "Island Cruise", EstCost: 110,
						Pros:  []string{"Relaxing", "Open bar", "Snorkeling"},
						Cons:  []string{"Crowded boat"},
						Votes: 1, Voters: []string{"traveler1"},
					},
					{
						ID: "opt2", Label: "River Safari", EstCost: 130,
						Pros:   []string{"Cultural", "Jet boat fun"},
						Cons:   []string{"Long drive to start"},
						Voters: []string{},
					},
					{
						ID: "opt3", Label: "Zipline/ATV", EstCost: 150,
						Pros:   []string{"Adrenaline", "Jungle views"},
						Cons:   []string{"Physical exertion"},
						Voters: []string{},
					},
				},
			},
		},
	}
}
