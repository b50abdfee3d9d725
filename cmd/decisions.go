package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/trip"
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Open and resolved group decisions",
	RunE:  runDecisions,
}

func init() {
	rootCmd.AddCommand(decisionsCmd)
}

func runDecisions(_ *cobra.Command, _ []string) error {
	s := newSession()
	doc := s.Document()
	travelers := len(doc.Trip.Travelers)

	fmt.Println()
	fmt.Println(cli.RenderTitle("DECISIONS"))
	fmt.Println()

	if len(doc.Decisions) == 0 {
		fmt.Println("  No decisions on this trip.")
		return nil
	}

	for _, d := range doc.Decisions {
		state := "OPEN"
		if d.Status == model.DecisionResolved {
			state = "RESOLVED"
		}
		fmt.Printf("  [%s] %s  (%d/%d votes)\n", state, d.Question, d.TotalVotes(), travelers)

		winner := trip.WinningOption(d)
		for _, opt := range d.Options {
			lead := " "
			if d.Status == model.DecisionResolved && opt.ID == winner.ID {
				lead = "✓"
			}
			fmt.Printf("    %s %s  %s  %d vote(s)\n",
				lead, opt.Label, cli.FormatMoneyExact(opt.EstCost), opt.Votes)
		}
		if d.LinkedItemID != "" {
			if item, ok := trip.FindItem(doc, d.LinkedItemID); ok {
				fmt.Printf("    Linked to %s\n", item.DisplayName())
			}
		}
		fmt.Println()
	}

	return nil
}
