package main

import (
	"os"

	"github.com/spf13/cobra"

	"jellyfix/internal/interfaces/cli/migrate"
	"jellyfix/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jellyfix",
		Short: "JellyFix - issue tracking for a Jellyfin media server",
		Long:  `JellyFix lets Jellyfin users report problems with media items and gives admins a triage dashboard with email notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
