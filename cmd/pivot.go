package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tripdeck/internal/config"
	"tripdeck/internal/trip"
)

var flagPivotReason string

var pivotCmd = &cobra.Command{
	Use:   "pivot [day-id]",
	Short: "Ask the advisor for an alternative plan for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runPivot,
}

func init() {
	pivotCmd.Flags().StringVarP(&flagPivotReason, "reason", "r", "", "Why the day needs a rethink")
	rootCmd.AddCommand(pivotCmd)
}

func runPivot(cmd *cobra.Command, args []string) error {
	dayID := args[0]

	s := newSession()
	doc := s.Document()
	if _, ok := trip.FindDay(doc, dayID); !ok {
		ids := make([]string, 0, len(doc.Itinerary))
		for _, d := range doc.Itinerary {
			ids = append(ids, d.ID)
		}
		return fmt.Errorf("unknown day %q (have: %s)", dayID, strings.Join(ids, ", "))
	}

	reason := flagPivotReason
	if reason == "" {
		reason = "The group wants a cheaper or more flexible option for this day."
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	svc, closeCache := newAdvisor(cfg)
	if closeCache != nil {
		defer closeCache()
	}

	fmt.Println()
	fmt.Println("  " + svc.PivotDay(cmd.Context(), doc, dayID, reason, s.BudgetRemaining()))
	return nil
}
