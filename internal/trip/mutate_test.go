package trip

import (
	"reflect"
	"testing"
	"time"

	"tripdeck/internal/model"
)

func TestUpdateItemStatus_BookWithActualCost(t *testing.T) {
	doc := testDoc(t)

	got := UpdateItemStatus(doc, "flight-1", model.StatusBooked, floatPtr(680))

	f := got.Items.Flights[0]
	if f.Status != model.StatusBooked {
		t.Fatalf("status = %q, want booked", f.Status)
	}
	if f.ActualCostPerPerson == nil || *f.ActualCostPerPerson != 680 {
		t.Fatalf("actual cost = %v, want 680", f.ActualCostPerPerson)
	}

	budget := ComputeBudget(got)
	if budget.FlightTotal != 680 {
		t.Fatalf("FlightTotal after booking = %.2f, want actual 680 not estimate 750", budget.FlightTotal)
	}
}

func TestUpdateItemStatus_NilCostPreservesActual(t *testing.T) {
	doc := testDoc(t)
	doc.Items.Flights[0].ActualCostPerPerson = floatPtr(680)

	got := UpdateItemStatus(doc, "flight-1", model.StatusCancelled, nil)

	f := got.Items.Flights[0]
	if f.Status != model.StatusCancelled {
		t.Fatalf("status = %q, want cancelled", f.Status)
	}
	if f.ActualCostPerPerson == nil || *f.ActualCostPerPerson != 680 {
		t.Fatalf("actual cost = %v, want preserved 680", f.ActualCostPerPerson)
	}
}

func TestUpdateItemStatus_UnknownIDIsNoOp(t *testing.T) {
	doc := testDoc(t)

	got := UpdateItemStatus(doc, "nonexistent-id", model.StatusBooked, floatPtr(100))

	if !reflect.DeepEqual(got, doc) {
		t.Fatal("update of unknown item changed the document")
	}
}

func TestUpdateItemStatus_FindsItemsInEveryCollection(t *testing.T) {
	doc := testDoc(t)

	hotels := UpdateItemStatus(doc, "hotel-1", model.StatusAgreed, nil)
	if hotels.Items.Hotels[0].Status != model.StatusAgreed {
		t.Fatalf("hotel status = %q, want agreed", hotels.Items.Hotels[0].Status)
	}

	acts := UpdateItemStatus(doc, "act-idea", model.StatusProposed, nil)
	if got := findActivity(t, acts, "act-idea").Status; got != model.StatusProposed {
		t.Fatalf("activity status = %q, want proposed", got)
	}
}

func TestAgreeDay_BookedItemsProtected(t *testing.T) {
	doc := testDoc(t)

	got, count := AgreeDay(doc, "day-1")

	// hotel-1 (proposed) and act-idea (idea) change; act-booked does not.
	if count != 2 {
		t.Fatalf("changed count = %d, want 2", count)
	}
	if got.Items.Hotels[0].Status != model.StatusAgreed {
		t.Fatalf("hotel status = %q, want agreed", got.Items.Hotels[0].Status)
	}
	if s := findActivity(t, got, "act-idea").Status; s != model.StatusAgreed {
		t.Fatalf("linked idea status = %q, want agreed", s)
	}
	if s := findActivity(t, got, "act-booked").Status; s != model.StatusBooked {
		t.Fatalf("booked item status = %q, want still booked", s)
	}
	// act-cancelled is not linked from day-1 and must be untouched.
	if s := findActivity(t, got, "act-cancelled").Status; s != model.StatusCancelled {
		t.Fatalf("unlinked item status = %q, want untouched cancelled", s)
	}
}

func TestAgreeDay_NothingToAgreeReturnsUnchanged(t *testing.T) {
	doc := testDoc(t)
	doc.Itinerary[0].LinkedItems = []string{"act-booked"}

	got, count := AgreeDay(doc, "day-1")

	if count != 0 {
		t.Fatalf("changed count = %d, want 0", count)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatal("all-booked day changed the document")
	}
}

func TestAgreeDay_UnknownDayIsNoOp(t *testing.T) {
	doc := testDoc(t)

	got, count := AgreeDay(doc, "day-missing")

	if count != 0 {
		t.Fatalf("changed count = %d, want 0", count)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatal("unknown day changed the document")
	}
}

func TestAgreeDay_BrokenLinkedItemIDsSkipped(t *testing.T) {
	doc := testDoc(t)
	doc.Itinerary[0].LinkedItems = append(doc.Itinerary[0].LinkedItems, "ghost-item")

	_, count := AgreeDay(doc, "day-1")

	if count != 2 {
		t.Fatalf("changed count with broken reference = %d, want 2", count)
	}
}

func TestAppendLog_AppendsWithoutMutatingInput(t *testing.T) {
	doc := testDoc(t)
	entry := model.LogEntry{
		ID:        "log-2",
		Message:   "Qantas booked at $680/pp.",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Kind:      model.LogBooking,
	}

	got := AppendLog(doc, entry)

	if len(got.ActivityLog) != 2 {
		t.Fatalf("log length = %d, want 2", len(got.ActivityLog))
	}
	if got.ActivityLog[1] != entry {
		t.Fatalf("last entry = %+v, want appended entry", got.ActivityLog[1])
	}
	if len(doc.ActivityLog) != 1 {
		t.Fatalf("input log length = %d, want untouched 1", len(doc.ActivityLog))
	}
}

func TestFindItem_SearchesAllCollections(t *testing.T) {
	doc := testDoc(t)

	tests := []struct {
		id   string
		name string
	}{
		{"flight-1", "Qantas"},
		{"hotel-1", "Melbourne Marriott"},
		{"act-idea", "Excursion"},
	}

	for _, tt := range tests {
		item, ok := FindItem(doc, tt.id)
		if !ok {
			t.Fatalf("FindItem(%q) not found", tt.id)
		}
		if item.DisplayName() != tt.name {
			t.Fatalf("DisplayName(%q) = %q, want %q", tt.id, item.DisplayName(), tt.name)
		}
	}

	if _, ok := FindItem(doc, "ghost"); ok {
		t.Fatal("FindItem found a nonexistent id")
	}
}

func TestResolveLinkedItems_SkipsBrokenReferences(t *testing.T) {
	doc := testDoc(t)
	doc.Itinerary[0].LinkedItems = []string{"hotel-1", "ghost-item", "act-booked"}

	items := ResolveLinkedItems(doc, doc.Itinerary[0])

	if len(items) != 2 {
		t.Fatalf("resolved %d items, want 2 (broken reference skipped)", len(items))
	}
}
