package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripdeck/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Trip progress and budget health",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	s := newSession()
	doc := s.Document()
	summary := s.Summary()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STATUS  %s", doc.Trip.Name)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Bucket", "Count"},
		Rows: [][]string{
			{"Booked", cli.FormatNumber(int64(summary.Items.Booked))},
			{"Agreed", cli.FormatNumber(int64(summary.Items.Agreed))},
			{"Proposed", cli.FormatNumber(int64(summary.Items.Proposed))},
			{"Ideas", cli.FormatNumber(int64(summary.Items.Idea))},
			{"Total items", cli.FormatNumber(int64(summary.Items.Total))},
		},
	}))

	fmt.Println()
	fmt.Printf("  Progress   %s\n", cli.RenderProgressBar(summary.Items.Booked, summary.Items.Total, 30))
	fmt.Printf("  Pipeline   %s\n", cli.RenderBucketBar(summary.Items, 30))
	fmt.Printf("  Decisions  %d open, %d resolved of %d\n",
		summary.Decisions.Open, summary.Decisions.Resolved, summary.Decisions.Total)
	fmt.Printf("  Budget     %s\n", cli.StatusLabel(string(summary.BudgetHealth)))

	return nil
}
