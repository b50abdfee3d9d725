// Package cmd implements the tripdeck command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tripdeck/internal/advisor"
	"tripdeck/internal/cli"
	"tripdeck/internal/config"
	"tripdeck/internal/model"
	"tripdeck/internal/seed"
	"tripdeck/internal/session"
	"tripdeck/internal/store"
)

var (
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tripdeck",
	Short: "Group trip planning dashboard",
	Long:  "Track the shared itinerary, vote on open decisions, and watch the per-person budget.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the advisory response cache")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// newSession builds the in-memory session over the seed document. One-shot
// commands derive read-only views from it; the document only evolves inside
// a TUI run, and never persists between runs.
func newSession() *session.Session {
	return session.New(seed.Trip())
}

// newAdvisor wires the advisory service from config: the client (nil
// without an API key, so every call falls back) plus the sqlite response
// cache.
// The returned closer is nil when no cache was opened.
func newAdvisor(cfg config.Config) (*advisor.Service, func()) {
	client := advisor.NewClient(config.APIKey(cfg), cfg.Advisor.BaseURL, cfg.Advisor.Model)

	var cache advisor.ResponseCache
	var closer func()
	if !flagNoCache && !cfg.Advisor.NoCache {
		c, err := store.Open(filepath.Join(config.CacheDir(), "advisor.db"))
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, calling without it\n")
			}
		} else {
			_ = c.Prune(7 * 24 * time.Hour)
			cache = c
			closer = func() { _ = c.Close() }
		}
	}

	return advisor.NewService(client, cache), closer
}

func runSummary(_ *cobra.Command, _ []string) error {
	s := newSession()
	doc := s.Document()
	budget := s.Budget()
	summary := s.Summary()

	fmt.Println(cli.RenderTitle(doc.Trip.Name))
	fmt.Println()
	fmt.Println(renderBudgetBar(budget))
	fmt.Println()
	fmt.Println(renderStatusOverview(summary))

	open := 0
	for _, d := range doc.Decisions {
		if d.Status != model.DecisionOpen {
			continue
		}
		if open == 0 {
			fmt.Println("  Decisions needing votes:")
		}
		open++
		fmt.Printf("    • %s (%d/%d votes)\n", d.Question, d.TotalVotes(), len(doc.Trip.Travelers))
	}
	if open > 0 {
		fmt.Println()
	}

	fmt.Println("  Run 'tripdeck tui' for the interactive dashboard.")
	return nil
}
