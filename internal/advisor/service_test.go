package advisor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripdeck/internal/model"
)

func testTrip(t *testing.T) model.TripData {
	t.Helper()
	return model.TripData{
		Trip: model.Trip{
			Name:                  "Test Trip",
			BudgetPerPersonTarget: 3250,
			Travelers:             []model.Traveler{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}},
		},
		Itinerary: []model.ItineraryDay{
			{ID: "day-1", DayNumber: 5, City: "Melbourne", Date: "2026-09-05",
				LinkedItems: []string{"act-1", "ghost"}},
		},
		Items: model.ItemCollections{
			Activities: []model.ActivityItem{
				{ID: "act-1", Title: "Rams Game", Status: model.StatusBooked},
			},
		},
	}
}

// memCache is an in-memory ResponseCache for tests.
type memCache struct {
	entries map[string]string
	puts    int
}

func newMemCache() *memCache { return &memCache{entries: map[string]string{}} }

func (m *memCache) Get(kind, digest string) (string, bool) {
	v, ok := m.entries[kind+"/"+digest]
	return v, ok
}

func (m *memCache) Put(kind, digest, text string) error {
	m.puts++
	m.entries[kind+"/"+digest] = text
	return nil
}

func TestService_NilClientFallsBack(t *testing.T) {
	svc := NewService(nil, nil)
	doc := testTrip(t)

	if got := svc.BudgetSummary(context.Background(), doc); got != FallbackBudget {
		t.Fatalf("BudgetSummary = %q, want fallback", got)
	}
	if got := svc.Ask(context.Background(), doc, "how much?"); got != FallbackQuestion {
		t.Fatalf("Ask = %q, want fallback", got)
	}
	if got := svc.PivotDay(context.Background(), doc, "day-1", "rain", 500); got != FallbackPivot {
		t.Fatalf("PivotDay = %q, want fallback", got)
	}
}

func TestService_ErrorFallsBack(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `oops`)
	svc := NewService(NewClient("test-key", srv.URL, ""), nil)

	got := svc.Ask(context.Background(), testTrip(t), "how much?")
	if got != FallbackQuestion {
		t.Fatalf("Ask on server error = %q, want fallback", got)
	}
}

func TestService_SuccessReturnsText(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"You are under budget."}]}}]}`)
	svc := NewService(NewClient("test-key", srv.URL, ""), nil)

	got := svc.BudgetSummary(context.Background(), testTrip(t))
	if got != "You are under budget." {
		t.Fatalf("BudgetSummary = %q", got)
	}
}

func TestService_CacheSkipsSecondCall(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"cached answer"}]}}]}`))
	})
	srv := newMuxServer(t, mux)

	cache := newMemCache()
	svc := NewService(NewClient("test-key", srv.URL, ""), cache)
	doc := testTrip(t)

	first := svc.Ask(context.Background(), doc, "same question")
	second := svc.Ask(context.Background(), doc, "same question")

	if first != "cached answer" || second != "cached answer" {
		t.Fatalf("answers = %q / %q", first, second)
	}
	if calls != 1 {
		t.Fatalf("API calls = %d, want 1 (second served from cache)", calls)
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}
}

func TestService_UnknownDayPivotFallsBack(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"never asked"}]}}]}`)
	svc := NewService(NewClient("test-key", srv.URL, ""), nil)

	got := svc.PivotDay(context.Background(), testTrip(t), "day-missing", "rain", 500)
	if got != FallbackPivot {
		t.Fatalf("PivotDay with unknown day = %q, want fallback", got)
	}
}

func TestPivotDayPrompt_SerializesDaySlice(t *testing.T) {
	doc := testTrip(t)

	prompt, ok := PivotDayPrompt(doc, "day-1", "too rainy", 480)
	if !ok {
		t.Fatal("PivotDayPrompt returned !ok for existing day")
	}
	for _, want := range []string{
		"Day 5 in Melbourne",
		"Rams Game",
		"too rainy",
		"$480 per person",
		"Keep any booked items fixed",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	// The broken linked id must be skipped, not serialized as null.
	if strings.Contains(prompt, "null") {
		t.Fatalf("prompt serialized a broken item reference:\n%s", prompt)
	}
}

func TestBudgetSummaryPrompt_EmbedsDocument(t *testing.T) {
	prompt := BudgetSummaryPrompt(testTrip(t))
	if !strings.Contains(prompt, `"Test Trip"`) {
		t.Fatalf("prompt missing serialized trip name:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2–3 sentences") {
		t.Fatalf("prompt missing answer-length instruction")
	}
}

func newMuxServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}
