package model

// DecisionStatus is the lifecycle state of a group decision.
type DecisionStatus string

// A decision opens for voting and resolves once every traveler has voted.
// Resolution is terminal.
const (
	DecisionOpen     DecisionStatus = "open"
	DecisionResolved DecisionStatus = "resolved"
)

// DecisionOption is one choice under a decision. Votes always equals
// len(Voters).
type DecisionOption struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	EstCost float64  `json:"estCost"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
	Votes   int      `json:"votes"`
	Voters  []string `json:"voters"`
}

// Decision is a group poll, optionally linked to an item that inherits the
// winning option's cost on resolution.
type Decision struct {
	ID           string           `json:"id"`
	Question     string           `json:"question"`
	Description  string           `json:"description"`
	Status       DecisionStatus   `json:"status"`
	Options      []DecisionOption `json:"options"`
	LinkedItemID string           `json:"linkedItemId,omitempty"`
}

// TotalVotes sums the votes cast across all options.
func (d Decision) TotalVotes() int {
	total := 0
	for _, opt := range d.Options {
		total += opt.Votes
	}
	return total
}

// HasVoted reports whether the traveler already voted on any option.
func (d Decision) HasVoted(travelerID string) bool {
	for _, opt := range d.Options {
		for _, v := range opt.Voters {
			if v == travelerID {
				return true
			}
		}
	}
	return false
}
