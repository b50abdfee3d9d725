package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
)

var flagFeedLimit int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Activity log, newest first",
	RunE:  runFeed,
}

func init() {
	feedCmd.Flags().IntVarP(&flagFeedLimit, "limit", "n", 20, "Maximum entries to show")
	rootCmd.AddCommand(feedCmd)
}

func runFeed(_ *cobra.Command, _ []string) error {
	s := newSession()
	doc := s.Document()

	fmt.Println()
	fmt.Println(cli.RenderTitle("ACTIVITY FEED"))
	fmt.Println()

	if len(doc.ActivityLog) == 0 {
		fmt.Println("  Nothing logged yet.")
		return nil
	}

	now := time.Now()
	shown := 0
	for i := len(doc.ActivityLog) - 1; i >= 0 && shown < flagFeedLimit; i-- {
		e := doc.ActivityLog[i]
		fmt.Printf("  %s  %s  %s\n", kindGlyph(e.Kind), e.Message, cli.TimeAgo(e.Timestamp, now))
		shown++
	}

	return nil
}

func kindGlyph(kind model.LogKind) string {
	switch kind {
	case model.LogBooking:
		return "✈"
	case model.LogDecision:
		return "✓"
	default:
		return "•"
	}
}
