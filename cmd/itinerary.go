package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tripdeck/internal/cli"
	"tripdeck/internal/trip"
)

var itineraryCmd = &cobra.Command{
	Use:   "itinerary",
	Short: "Day-by-day plan with linked items",
	RunE:  runItinerary,
}

func init() {
	rootCmd.AddCommand(itineraryCmd)
}

func runItinerary(_ *cobra.Command, _ []string) error {
	s := newSession()
	doc := s.Document()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ITINERARY  %s", doc.Trip.Name)))
	fmt.Println()

	for _, day := range doc.Itinerary {
		marker := " "
		if day.IsHighlight {
			marker = "★"
		}
		fmt.Printf("  %s Day %d  %s  %s\n", marker, day.DayNumber, cli.FormatDate(day.Date), day.City)
		if day.Title != "" {
			fmt.Printf("      %s\n", day.Title)
		}
		for _, bullet := range day.PlanBullets {
			fmt.Printf("      - %s\n", bullet)
		}
		for _, item := range trip.ResolveLinkedItems(doc, day) {
			fmt.Printf("      %s  %s  %s\n",
				cli.RenderStatus(item.ItemStatus()),
				item.DisplayName(),
				cli.FormatMoneyExact(item.CostPerPerson()))
		}
		if day.EstCostPerPersonThisDay > 0 {
			fmt.Printf("      Est %s per person this day\n", cli.FormatMoneyExact(day.EstCostPerPersonThisDay))
		}
		if day.Note != "" {
			for _, line := range strings.Split(day.Note, "\n") {
				fmt.Printf("      %s\n", line)
			}
		}
		fmt.Println()
	}

	return nil
}
