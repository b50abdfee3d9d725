package trip

import "tripdeck/internal/model"

// UpdateItemStatus sets an item's status, and its actual per-person cost
// when one is supplied (a nil actualCost preserves any prior actual cost).
// Unknown item ids return the document unchanged.
func UpdateItemStatus(doc model.TripData, itemID string, status model.ItemStatus, actualCost *float64) model.TripData {
	if _, ok := FindItem(doc, itemID); !ok {
		return doc
	}

	out := doc.Clone()

	for i := range out.Items.Flights {
		if out.Items.Flights[i].ID == itemID {
			out.Items.Flights[i].Status = status
			if actualCost != nil {
				out.Items.Flights[i].ActualCostPerPerson = actualCost
			}
			return out
		}
	}
	for i := range out.Items.Hotels {
		if out.Items.Hotels[i].ID == itemID {
			out.Items.Hotels[i].Status = status
			if actualCost != nil {
				out.Items.Hotels[i].ActualCostPerPerson = actualCost
			}
			return out
		}
	}
	for i := range out.Items.Activities {
		if out.Items.Activities[i].ID == itemID {
			out.Items.Activities[i].Status = status
			if actualCost != nil {
				out.Items.Activities[i].ActualCostPerPerson = actualCost
			}
			return out
		}
	}
	return out
}

// AgreeDay marks every non-booked item linked from the day as agreed and
// returns the changed-item count. Booked items are never downgraded. A zero
// count means nothing changed and the input document is returned as is.
func AgreeDay(doc model.TripData, dayID string) (model.TripData, int) {
	day, ok := FindDay(doc, dayID)
	if !ok {
		return doc, 0
	}

	linked := make(map[string]bool, len(day.LinkedItems))
	for _, id := range day.LinkedItems {
		linked[id] = true
	}

	out := doc.Clone()
	count := 0

	for i := range out.Items.Flights {
		f := &out.Items.Flights[i]
		if linked[f.ID] && f.Status != model.StatusBooked {
			f.Status = model.StatusAgreed
			count++
		}
	}
	for i := range out.Items.Hotels {
		h := &out.Items.Hotels[i]
		if linked[h.ID] && h.Status != model.StatusBooked {
			h.Status = model.StatusAgreed
			count++
		}
	}
	for i := range out.Items.Activities {
		a := &out.Items.Activities[i]
		if linked[a.ID] && a.Status != model.StatusBooked {
			a.Status = model.StatusAgreed
			count++
		}
	}

	if count == 0 {
		return doc, 0
	}
	return out, count
}

// AppendLog appends a fully built entry to the activity log. Entry id and
// timestamp generation are the caller's concern; the log itself is
// append-only.
func AppendLog(doc model.TripData, entry model.LogEntry) model.TripData {
	out := doc.Clone()
	out.ActivityLog = append(out.ActivityLog, entry)
	return out
}
