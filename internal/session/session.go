// Package session owns the live trip document for one run of the app. It
// wraps the pure reducer operations with the effectful concerns they push
// to the boundary: log entry ids, timestamps, and open-to-resolved
// transition detection.
package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tripdeck/internal/model"
	"tripdeck/internal/trip"
)

// Clock supplies timestamps for log entries.
type Clock func() time.Time

// IDGen supplies ids for log entries.
type IDGen func() string

// Session is the single owner of the current document. Each operation
// swaps the held snapshot for the one the reducer returns. Not safe for
// concurrent use.
type Session struct {
	doc   model.TripData
	now   Clock
	newID IDGen
}

// New creates a session over the given document with wall-clock time and
// random ids.
func New(doc model.TripData) *Session {
	return NewWithGenerators(doc, time.Now, uuid.NewString)
}

// NewWithGenerators creates a session with injected clock and id
// generation. Tests use this for deterministic log entries.
func NewWithGenerators(doc model.TripData, now Clock, newID IDGen) *Session {
	return &Session{doc: doc, now: now, newID: newID}
}

// Document returns the current snapshot. Treat it as read only; all
// mutation goes through the session methods.
func (s *Session) Document() model.TripData {
	return s.doc
}

// Budget derives the current budget breakdown.
func (s *Session) Budget() model.BudgetState {
	return trip.ComputeBudget(s.doc)
}

// Summary derives the current status summary.
func (s *Session) Summary() model.StatusSummary {
	return trip.Summarize(s.doc, s.Budget())
}

// BudgetRemaining is the per-person amount left under target, floored at
// zero. Advisory prompts quote this figure.
func (s *Session) BudgetRemaining() float64 {
	return s.Budget().Remaining()
}

// Vote casts a traveler's vote. If the vote resolves the decision, a
// decision log entry naming the winner is appended.
func (s *Session) Vote(decisionID, optionID, travelerID string) {
	before, hadBefore := trip.FindDecision(s.doc, decisionID)
	next := trip.CastVote(s.doc, decisionID, optionID, travelerID)

	after, _ := trip.FindDecision(next, decisionID)
	if hadBefore && before.Status == model.DecisionOpen && after.Status == model.DecisionResolved {
		winner := trip.WinningOption(after)
		next = trip.AppendLog(next, s.entry(
			fmt.Sprintf("Decision Resolved: %s selected for %s.", winner.Label, after.Question),
			model.LogDecision,
		))
	}

	s.doc = next
}

// SetItemStatus updates an item's status and optional actual cost. A
// transition to booked appends a booking log entry quoting the per-person
// cost paid.
func (s *Session) SetItemStatus(itemID string, status model.ItemStatus, actualCost *float64) {
	next := trip.UpdateItemStatus(s.doc, itemID, status, actualCost)

	if status == model.StatusBooked {
		if item, ok := trip.FindItem(next, itemID); ok {
			next = trip.AppendLog(next, s.entry(
				fmt.Sprintf("%s booked at $%s/pp.", item.DisplayName(), formatCost(item.CostPerPerson())),
				model.LogBooking,
			))
		}
	}

	s.doc = next
}

// AgreeDay marks a day's non-booked linked items agreed. An info entry is
// logged only when at least one item actually changed.
func (s *Session) AgreeDay(dayID string) {
	next, count := trip.AgreeDay(s.doc, dayID)
	if count > 0 {
		day, _ := trip.FindDay(next, dayID)
		next = trip.AppendLog(next, s.entry(
			fmt.Sprintf("Group agreed to plan for %s (Day %d).", day.City, day.DayNumber),
			model.LogInfo,
		))
	}

	s.doc = next
}

func (s *Session) entry(message string, kind model.LogKind) model.LogEntry {
	return model.LogEntry{
		ID:        s.newID(),
		Message:   message,
		Timestamp: s.now(),
		Kind:      kind,
	}
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
