package model

import "time"

// LogKind categorizes activity log entries for display.
type LogKind string

// Log entry kinds.
const (
	LogInfo     LogKind = "info"
	LogBooking  LogKind = "booking"
	LogDecision LogKind = "decision"
)

// LogEntry is one line of the trip's append-only audit trail. Entries are
// never edited or removed; ordering is insertion order, oldest first.
type LogEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Kind      LogKind   `json:"type"`
}
