package trip

import "tripdeck/internal/model"

// FindItem looks an item up by id across flights, hotels, and activities,
// in that order. Ids are unique across the three collections, so the order
// only matters for the miss case.
func FindItem(doc model.TripData, itemID string) (model.Item, bool) {
	for _, f := range doc.Items.Flights {
		if f.ID == itemID {
			return f, true
		}
	}
	for _, h := range doc.Items.Hotels {
		if h.ID == itemID {
			return h, true
		}
	}
	for _, a := range doc.Items.Activities {
		if a.ID == itemID {
			return a, true
		}
	}
	return nil, false
}

// FindDay looks an itinerary day up by id.
func FindDay(doc model.TripData, dayID string) (model.ItineraryDay, bool) {
	for _, day := range doc.Itinerary {
		if day.ID == dayID {
			return day, true
		}
	}
	return model.ItineraryDay{}, false
}

// FindDecision looks a decision up by id.
func FindDecision(doc model.TripData, decisionID string) (model.Decision, bool) {
	for _, d := range doc.Decisions {
		if d.ID == decisionID {
			return d, true
		}
	}
	return model.Decision{}, false
}

// ResolveLinkedItems maps a day's linked item ids to items, skipping ids
// that resolve to nothing.
func ResolveLinkedItems(doc model.TripData, day model.ItineraryDay) []model.Item {
	items := make([]model.Item, 0, len(day.LinkedItems))
	for _, id := range day.LinkedItems {
		if item, ok := FindItem(doc, id); ok {
			items = append(items, item)
		}
	}
	return items
}
