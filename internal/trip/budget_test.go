package trip

import (
	"testing"

	"tripdeck/internal/model"
)

func TestComputeBudget_SumsEstimatesPerCategory(t *testing.T) {
	doc := testDoc(t)

	budget := ComputeBudget(doc)

	if budget.FlightTotal != 750 {
		t.Fatalf("FlightTotal = %.2f, want 750", budget.FlightTotal)
	}
	if budget.HotelTotal != 308 {
		t.Fatalf("HotelTotal = %.2f, want 308", budget.HotelTotal)
	}
	// 0 (booked) + 120 (idea) + 60 (cancelled)
	if budget.ActivityTotal != 180 {
		t.Fatalf("ActivityTotal = %.2f, want 180", budget.ActivityTotal)
	}
	if budget.Target != 3250 {
		t.Fatalf("Target = %.2f, want 3250", budget.Target)
	}
}

func TestComputeBudget_Additivity(t *testing.T) {
	budget := ComputeBudget(testDoc(t))

	want := budget.FlightTotal + budget.HotelTotal + budget.ActivityTotal
	if budget.GrandTotal != want {
		t.Fatalf("GrandTotal = %.2f, want %.2f", budget.GrandTotal, want)
	}
	if budget.PerPersonTotal != budget.GrandTotal {
		t.Fatalf("PerPersonTotal = %.2f, want GrandTotal %.2f", budget.PerPersonTotal, budget.GrandTotal)
	}
}

func TestComputeBudget_EmptyDocument(t *testing.T) {
	doc := model.TripData{Trip: model.Trip{BudgetPerPersonTarget: 3000}}

	budget := ComputeBudget(doc)

	if budget.FlightTotal != 0 || budget.HotelTotal != 0 || budget.ActivityTotal != 0 {
		t.Fatalf("empty doc totals = %.2f/%.2f/%.2f, want all 0",
			budget.FlightTotal, budget.HotelTotal, budget.ActivityTotal)
	}
	if budget.GrandTotal != 0 || budget.PerPersonTotal != 0 {
		t.Fatalf("empty doc grand/perPerson = %.2f/%.2f, want 0", budget.GrandTotal, budget.PerPersonTotal)
	}
	if budget.Target != 3000 {
		t.Fatalf("Target = %.2f, want 3000", budget.Target)
	}
}

func TestComputeBudget_ActualCostPrecedence(t *testing.T) {
	doc := testDoc(t)
	doc.Items.Flights[0].ActualCostPerPerson = floatPtr(680)

	budget := ComputeBudget(doc)

	if budget.FlightTotal != 680 {
		t.Fatalf("FlightTotal = %.2f, want actual 680 over estimate 750", budget.FlightTotal)
	}
}

func TestBudgetState_Remaining(t *testing.T) {
	b := model.BudgetState{PerPersonTotal: 1238, Target: 3250}
	if got := b.Remaining(); got != 2012 {
		t.Fatalf("Remaining = %.2f, want 2012", got)
	}

	over := model.BudgetState{PerPersonTotal: 4000, Target: 3250}
	if got := over.Remaining(); got != 0 {
		t.Fatalf("Remaining over target = %.2f, want 0", got)
	}
}
