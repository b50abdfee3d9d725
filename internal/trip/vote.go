package trip

import (
	"fmt"
	"sort"

	"tripdeck/internal/model"
)

// CastVote records one traveler's vote on a decision option and returns
// the updated document.
//
// A traveler may vote at most once per option; re-votes are absorbed
// silently. When the total votes across all options reach the traveler
// count, the decision resolves: the option with the most votes wins (first
// declared wins ties) and, if the decision links an item, that item is
// marked agreed with the winner's cost. Resolution is terminal; votes
// against a resolved decision change nothing.
func CastVote(doc model.TripData, decisionID, optionID, travelerID string) model.TripData {
	idx := -1
	for i, d := range doc.Decisions {
		if d.ID == decisionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return doc
	}
	if doc.Decisions[idx].Status == model.DecisionResolved {
		return doc
	}

	out := doc.Clone()
	dec := &out.Decisions[idx]

	for i := range dec.Options {
		opt := &dec.Options[i]
		if opt.ID != optionID {
			continue
		}
		if !hasVoter(opt.Voters, travelerID) {
			opt.Votes++
			opt.Voters = append(opt.Voters, travelerID)
		}
	}

	if dec.TotalVotes() >= len(out.Trip.Travelers) {
		dec.Status = model.DecisionResolved
		if dec.LinkedItemID != "" {
			applyWinner(&out, dec.LinkedItemID, WinningOption(*dec))
		}
	}

	return out
}

// WinningOption returns the option with the most votes. Ties go to the
// option declared first.
func WinningOption(dec model.Decision) model.DecisionOption {
	opts := append([]model.DecisionOption(nil), dec.Options...)
	sort.SliceStable(opts, func(i, j int) bool {
		return opts[i].Votes > opts[j].Votes
	})
	return opts[0]
}

func hasVoter(voters []string, travelerID string) bool {
	for _, v := range voters {
		if v == travelerID {
			return true
		}
	}
	return false
}

// applyWinner updates the decision's linked item in place within an
// already-cloned document: agreed status, winner's cost, and a resolution
// note appended to any existing notes.
func applyWinner(doc *model.TripData, itemID string, winner model.DecisionOption) {
	note := fmt.Sprintf("[Decision Resolved: Selected %s]", winner.Label)

	for i := range doc.Items.Flights {
		if doc.Items.Flights[i].ID == itemID {
			f := &doc.Items.Flights[i]
			f.Status = model.StatusAgreed
			f.EstCostPerPerson = winner.EstCost
			f.Notes = appendNote(f.Notes, note)
			return
		}
	}
	for i := range doc.Items.Hotels {
		if doc.Items.Hotels[i].ID == itemID {
			h := &doc.Items.Hotels[i]
			h.Status = model.StatusAgreed
			h.EstCostPerPerson = winner.EstCost
			h.Notes = appendNote(h.Notes, note)
			return
		}
	}
	for i := range doc.Items.Activities {
		if doc.Items.Activities[i].ID == itemID {
			a := &doc.Items.Activities[i]
			a.Status = model.StatusAgreed
			a.EstCostPerPerson = winner.EstCost
			a.Notes = appendNote(a.Notes, note)
			return
		}
	}
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
