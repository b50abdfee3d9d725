package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripdeck/internal/cli"
	"tripdeck/internal/config"
)

var flagAdvise bool

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Per-person budget breakdown",
	RunE:  runBudget,
}

func init() {
	budgetCmd.Flags().BoolVar(&flagAdvise, "advise", false, "Include an advisory budget summary")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	s := newSession()
	doc := s.Document()
	b := s.Budget()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s", doc.Trip.Name)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Per Person"},
		Rows: [][]string{
			{"Flights", cli.FormatMoneyExact(b.FlightTotal)},
			{"Hotels", cli.FormatMoneyExact(b.HotelTotal)},
			{"Activities", cli.FormatMoneyExact(b.ActivityTotal)},
			{"Total", cli.FormatMoneyExact(b.PerPersonTotal)},
			{"Target", cli.FormatMoneyExact(b.Target)},
			{"Remaining", cli.FormatMoneyExact(b.Remaining())},
		},
	}))

	fmt.Printf("\n  %s\n", cli.BudgetPill(b.PerPersonTotal, b.Target))

	if flagAdvise {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		svc, closeCache := newAdvisor(cfg)
		if closeCache != nil {
			defer closeCache()
		}
		fmt.Println()
		fmt.Println("  " + svc.BudgetSummary(cmd.Context(), doc))
	}

	return nil
}
