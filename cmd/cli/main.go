package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var host string

func main() {
	rootCmd := &cobra.Command{
		Use:   "smashctl",
		Short: "CLI for the smash leaderboard service",
	}

	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "Base URL of the leaderboard service")

	rootCmd.AddCommand(
		healthCmd(),
		leaderboardCmd(),
		playersCmd(),
		matchesCmd(),
		statusCmd(),
		refreshCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
