package model

// Clone returns a deep copy of the document. Operations clone before they
// touch anything so the caller's snapshot is never aliased.
func (d TripData) Clone() TripData {
	out := d
	out.Trip.Travelers = append([]Traveler(nil), d.Trip.Travelers...)

	out.Itinerary = make([]ItineraryDay, len(d.Itinerary))
	for i, day := range d.Itinerary {
		day.PlanBullets = append([]string(nil), day.PlanBullets...)
		day.LinkedItems = append([]string(nil), day.LinkedItems...)
		out.Itinerary[i] = day
	}

	out.Items.Flights = make([]FlightItem, len(d.Items.Flights))
	for i, f := range d.Items.Flights {
		f.ActualCostPerPerson = cloneCost(f.ActualCostPerPerson)
		out.Items.Flights[i] = f
	}
	out.Items.Hotels = make([]HotelItem, len(d.Items.Hotels))
	for i, h := range d.Items.Hotels {
		h.ActualCostPerPerson = cloneCost(h.ActualCostPerPerson)
		out.Items.Hotels[i] = h
	}
	out.Items.Activities = make([]ActivityItem, len(d.Items.Activities))
	for i, a := range d.Items.Activities {
		a.ActualCostPerPerson = cloneCost(a.ActualCostPerPerson)
		out.Items.Activities[i] = a
	}

	out.Decisions = make([]Decision, len(d.Decisions))
	for i, dec := range d.Decisions {
		opts := make([]DecisionOption, len(dec.Options))
		for j, opt := range dec.Options {
			opt.Pros = append([]string(nil), opt.Pros...)
			opt.Cons = append([]string(nil), opt.Cons...)
			opt.Voters = append([]string(nil), opt.Voters...)
			opts[j] = opt
		}
		dec.Options = opts
		out.Decisions[i] = dec
	}

	out.ActivityLog = append([]LogEntry(nil), d.ActivityLog...)
	return out
}

func cloneCost(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
