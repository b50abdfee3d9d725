package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tripdeck/internal/config"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the trip advisor a question about the plan",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	svc, closeCache := newAdvisor(cfg)
	if closeCache != nil {
		defer closeCache()
	}

	s := newSession()
	fmt.Println()
	fmt.Println("  " + svc.Ask(cmd.Context(), s.Document(), question))
	return nil
}
