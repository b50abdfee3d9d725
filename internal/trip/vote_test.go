package trip

import (
	"reflect"
	"strings"
	"testing"

	"tripdeck/internal/model"
)

func TestCastVote_AddsVote(t *testing.T) {
	doc := testDoc(t)

	got := CastVote(doc, "dec-1", "opt-a", "t1")

	opt := got.Decisions[0].Options[0]
	if opt.Votes != 1 {
		t.Fatalf("Votes = %d, want 1", opt.Votes)
	}
	if !reflect.DeepEqual(opt.Voters, []string{"t1"}) {
		t.Fatalf("Voters = %v, want [t1]", opt.Voters)
	}
	if got.Decisions[0].Status != model.DecisionOpen {
		t.Fatalf("status = %q after 1 of 3 votes, want open", got.Decisions[0].Status)
	}
}

func TestCastVote_DoesNotMutateInput(t *testing.T) {
	doc := testDoc(t)
	before := doc.Clone()

	_ = CastVote(doc, "dec-1", "opt-a", "t1")

	if !reflect.DeepEqual(doc, before) {
		t.Fatal("CastVote mutated its input document")
	}
}

func TestCastVote_Idempotent(t *testing.T) {
	doc := testDoc(t)

	once := CastVote(doc, "dec-1", "opt-a", "t1")
	twice := CastVote(once, "dec-1", "opt-a", "t1")

	if !reflect.DeepEqual(once, twice) {
		t.Fatal("repeat vote by same traveler on same option changed the document")
	}
}

func TestCastVote_UnknownDecisionIsNoOp(t *testing.T) {
	doc := testDoc(t)

	got := CastVote(doc, "dec-missing", "opt-a", "t1")

	if !reflect.DeepEqual(got, doc) {
		t.Fatal("vote on unknown decision changed the document")
	}
}

func TestCastVote_ResolvesAtTravelerCount(t *testing.T) {
	doc := testDoc(t)

	doc = CastVote(doc, "dec-1", "opt-a", "t1")
	doc = CastVote(doc, "dec-1", "opt-a", "t2")
	if doc.Decisions[0].Status != model.DecisionOpen {
		t.Fatalf("status = %q after 2 of 3 votes, want open", doc.Decisions[0].Status)
	}

	doc = CastVote(doc, "dec-1", "opt-b", "t3")

	dec := doc.Decisions[0]
	if dec.Status != model.DecisionResolved {
		t.Fatalf("status = %q after 3 of 3 votes, want resolved", dec.Status)
	}
	if winner := WinningOption(dec); winner.ID != "opt-a" {
		t.Fatalf("winner = %q, want opt-a (2 votes vs 1)", winner.ID)
	}
}

func TestCastVote_ResolutionUpdatesLinkedItem(t *testing.T) {
	doc := testDoc(t)
	doc.Items.Activities[1].Notes = "Need to vote on option"

	doc = CastVote(doc, "dec-1", "opt-a", "t1")
	doc = CastVote(doc, "dec-1", "opt-a", "t2")
	doc = CastVote(doc, "dec-1", "opt-a", "t3")

	item := findActivity(t, doc, "act-idea")
	if item.Status != model.StatusAgreed {
		t.Fatalf("linked item status = %q, want agreed", item.Status)
	}
	if item.EstCostPerPerson != 110 {
		t.Fatalf("linked item est cost = %.2f, want winner's 110", item.EstCostPerPerson)
	}
	want := "Need to vote on option\n[Decision Resolved: Selected Island Cruise]"
	if item.Notes != want {
		t.Fatalf("linked item notes = %q, want %q", item.Notes, want)
	}
}

func TestCastVote_ResolutionNoteWithEmptyNotes(t *testing.T) {
	doc := testDoc(t)

	doc = CastVote(doc, "dec-1", "opt-b", "t1")
	doc = CastVote(doc, "dec-1", "opt-b", "t2")
	doc = CastVote(doc, "dec-1", "opt-b", "t3")

	item := findActivity(t, doc, "act-idea")
	if strings.Contains(item.Notes, "\n") {
		t.Fatalf("notes on previously empty item should be a single line, got %q", item.Notes)
	}
	if item.Notes != "[Decision Resolved: Selected River Safari]" {
		t.Fatalf("notes = %q", item.Notes)
	}
}

func TestCastVote_ResolutionIsTerminal(t *testing.T) {
	doc := testDoc(t)
	doc = CastVote(doc, "dec-1", "opt-a", "t1")
	doc = CastVote(doc, "dec-1", "opt-a", "t2")
	doc = CastVote(doc, "dec-1", "opt-b", "t3")

	resolved := doc.Clone()
	// t3 already voted opt-b; trying opt-a now must change nothing.
	got := CastVote(doc, "dec-1", "opt-a", "t3")

	if !reflect.DeepEqual(got, resolved) {
		t.Fatal("vote on resolved decision changed the document")
	}
}

func TestWinningOption_TieGoesToFirstDeclared(t *testing.T) {
	dec := model.Decision{
		Options: []model.DecisionOption{
			{ID: "first", Votes: 1},
			{ID: "second", Votes: 1},
		},
	}

	if winner := WinningOption(dec); winner.ID != "first" {
		t.Fatalf("tie winner = %q, want first-declared option", winner.ID)
	}
}

func TestCastVote_WithoutLinkedItemResolvesCleanly(t *testing.T) {
	doc := testDoc(t)
	doc.Decisions[0].LinkedItemID = ""

	doc = CastVote(doc, "dec-1", "opt-a", "t1")
	doc = CastVote(doc, "dec-1", "opt-a", "t2")
	doc = CastVote(doc, "dec-1", "opt-a", "t3")

	if doc.Decisions[0].Status != model.DecisionResolved {
		t.Fatalf("status = %q, want resolved", doc.Decisions[0].Status)
	}
	item := findActivity(t, doc, "act-idea")
	if item.Status != model.StatusIdea {
		t.Fatalf("unlinked item status = %q, want untouched idea", item.Status)
	}
}
