package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations and seeders so their init() funcs run and
	// register themselves.
	_ "github.com/shashiranjanraj/charvi/database/migrations"
	_ "github.com/shashiranjanraj/charvi/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crmd",
	Short: "Charvi — CRM backend CLI",
	Long:  "Charvi is a GraphQL CRM backend. Use this CLI to serve, migrate, seed and run jobs.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Jobs
	rootCmd.AddCommand(jobsListCmd)
	rootCmd.AddCommand(jobsRunCmd)

	// Auth
	rootCmd.AddCommand(tokenIssueCmd)
}
