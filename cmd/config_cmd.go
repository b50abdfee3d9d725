package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripdeck/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if _, statErr := os.Stat(config.ConfigPath()); statErr == nil {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Traveler ID: %s\n", cfg.General.TravelerID)
	fmt.Println()

	fmt.Println("  [Advisor]")
	if key := config.APIKey(cfg); key != "" {
		fmt.Printf("    API key:  %s\n", maskAPIKey(key))
	} else {
		fmt.Println("    API key:  not configured (advisory calls fall back to canned text)")
	}
	fmt.Printf("    Model:    %s\n", cfg.Advisor.Model)
	if cfg.Advisor.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.Advisor.BaseURL)
	}
	fmt.Printf("    Cache:    %v\n", !cfg.Advisor.NoCache)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Edit %s to reconfigure.\n", config.ConfigPath())
	return nil
}

// maskAPIKey shows only enough of a key to recognize it.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
