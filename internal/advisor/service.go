package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"tripdeck/internal/model"
)

// Fallback sentences shown when the advisory service fails. Failures are
// never surfaced as errors past this boundary.
const (
	FallbackBudget   = "Sorry, I couldn't generate the budget summary right now."
	FallbackPivot    = "Sorry, I couldn't generate alternatives right now."
	FallbackQuestion = "Sorry, I'm having trouble connecting to the travel database."
)

// ResponseCache stores advisory answers by prompt digest so identical asks
// within a session skip the network. Implementations may be nil-safe no-ops.
type ResponseCache interface {
	Get(kind, digest string) (string, bool)
	Put(kind, digest, text string) error
}

// Service wraps the client with prompt construction, caching, and the
// fixed-fallback error policy.
type Service struct {
	client *Client
	cache  ResponseCache
}

// NewService creates the advisory service. client may be nil (no API key
// configured); every call then returns its fallback. cache may be nil to
// disable caching.
func NewService(client *Client, cache ResponseCache) *Service {
	return &Service{client: client, cache: cache}
}

// BudgetSummary returns a short narrative budget readout.
func (s *Service) BudgetSummary(ctx context.Context, doc model.TripData) string {
	return s.generate(ctx, "budget", BudgetSummaryPrompt(doc), FallbackBudget)
}

// PivotDay returns alternative plans for one day, honoring booked items.
func (s *Service) PivotDay(ctx context.Context, doc model.TripData, dayID, reason string, budgetRemaining float64) string {
	prompt, ok := PivotDayPrompt(doc, dayID, reason, budgetRemaining)
	if !ok {
		return FallbackPivot
	}
	return s.generate(ctx, "pivot", prompt, FallbackPivot)
}

// Ask answers a free-form question about the trip.
func (s *Service) Ask(ctx context.Context, doc model.TripData, question string) string {
	return s.generate(ctx, "question", QuestionPrompt(doc, question), FallbackQuestion)
}

func (s *Service) generate(ctx context.Context, kind, prompt, fallback string) string {
	if s.client == nil {
		return fallback
	}

	digest := promptDigest(prompt)
	if s.cache != nil {
		if text, ok := s.cache.Get(kind, digest); ok {
			return text
		}
	}

	text, err := s.client.Generate(ctx, SystemInstruction, prompt)
	if err != nil {
		return fallback
	}

	if s.cache != nil {
		_ = s.cache.Put(kind, digest, text) // cache failure is not worth surfacing
	}
	return text
}

func promptDigest(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
