package advisor

import (
	"encoding/json"
	"fmt"

	"tripdeck/internal/model"
	"tripdeck/internal/trip"
)

// SystemInstruction frames every advisory call. The assistant sees trip
// state as JSON and must treat booked items as fixed.
const SystemInstruction = `You are the intelligent planning assistant for a trip called "Rams + Australia + Fiji 2026."

TRIP FACTS (never change these):
- 3 travelers total (heterosexual males, one married)
- Route: LAX → Melbourne → Sydney → Fiji → LAX
- Dates: September 1–13, 2026 (11 days / 10 nights)
- FIXED: LA Rams game in Melbourne on Friday, September 5, 2026 at MCG
- Budget target: $3,000–3,500 per person for flights + hotels
- Discounts available:
  * Marriott Explore rates (assume 25–35% off published Marriott rates)
  * 10% off Vrbo properties
- Group preferences: sports, beaches, one adventure day, cost-conscious but memorable

YOUR ROLE:
- You receive trip state as JSON (flights, hotels, activities, decisions, budget totals)
- Respect all items with status="booked" as fixed and unchangeable
- For items with status="idea" or "proposed", suggest changes ONLY if they improve budget or experience
- When asked about budget, show clear per-person totals and compare to the $3,000–3,500 target
- When asked to pivot or adjust plans, keep the Rams game on 9/5 fixed
- Suggest alternatives for same city/day when weather or preferences change
- Answer in plain, conversational English (2–4 sentences max unless asked for detail)
- Reference the data you see; don't invent new costs or items

RULES:
1. Never suggest removing the Rams game or changing its date
2. Always apply Marriott Explore discount (25–35%) when usesExploreRate=true
3. Always apply 10% Vrbo discount when usesVrboDiscount=true
4. When computing totals, divide shared costs (hotels, rental cars) by 3 people
5. Flights are individual costs, NOT shared
6. Mark trip as "on target" if total is $3,000–3,500 per person
7. Mark "under budget" if < $3,000, "over budget" if > $3,500`

// BudgetSummaryPrompt asks for a short plain-English budget readout over
// the full serialized document.
func BudgetSummaryPrompt(doc model.TripData) string {
	return fmt.Sprintf(`Given the current trip state JSON below, provide:
1. Per-person total (flights + hotels + activities)
2. Comparison to target ($3,000–3,500)
3. Status: under-target / at-target / over-target
4. One suggestion to get closer to target if over

Answer in 2–3 sentences, plain English.

Current trip state:
%s`, mustJSON(doc))
}

// PivotDayPrompt asks for alternative plans for one day. Only the day and
// its resolved linked items are serialized, not the whole document. The
// second return is false when the day id resolves to nothing.
func PivotDayPrompt(doc model.TripData, dayID, reason string, budgetRemaining float64) (string, bool) {
	day, ok := trip.FindDay(doc, dayID)
	if !ok {
		return "", false
	}
	dayItems := trip.ResolveLinkedItems(doc, day)

	return fmt.Sprintf(`The group is currently on Day %d in %s on %s.

Current plan for this day:
%s
Linked Items Details:
%s

Change reason: %s

Budget remaining for optional activities: $%.0f per person.

Suggest 2 alternative plans for this day that:
- Keep any booked items fixed
- Match the reason for change
- Stay within budget
- Are in the same city

Format as:
**Alternative 1:** [brief description]
**Alternative 2:** [brief description]`,
		day.DayNumber, day.City, day.Date,
		mustJSON(day), mustJSON(dayItems), reason, budgetRemaining), true
}

// QuestionPrompt asks a free-form question against the full document.
func QuestionPrompt(doc model.TripData, question string) string {
	return fmt.Sprintf(`Current trip state:
%s

User question: "%s"

Answer clearly in 2–4 sentences. Reference the data in the trip state. If the question involves costs, show per-person amounts.`,
		mustJSON(doc), question)
}

// mustJSON serializes for prompt embedding. The document is built from
// plain structs and cannot fail to marshal; an error here is a programming
// bug surfaced as a visible placeholder rather than a panic.
func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("(unserializable: %v)", err)
	}
	return string(data)
}
