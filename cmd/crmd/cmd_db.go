package main

import (
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/charvi/config"
	"github.com/shashiranjanraj/charvi/database/seeders"
	"github.com/shashiranjanraj/charvi/pkg/database"
	"github.com/shashiranjanraj/charvi/pkg/migration"
)

// withDB loads config and opens the database before running fn.
func withDB(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if err := database.Connect(); err != nil {
			return err
		}
		return fn(cmd, args)
	}
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: withDB(func(*cobra.Command, []string) error {
		return migration.New(database.DB).Run()
	}),
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Undo the most recent migration batch",
	RunE: withDB(func(*cobra.Command, []string) error {
		return migration.New(database.DB).Rollback()
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show which migrations have run",
	RunE: withDB(func(*cobra.Command, []string) error {
		return migration.New(database.DB).Status()
	}),
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample customers, products and orders",
	RunE: withDB(func(*cobra.Command, []string) error {
		return seeders.RunAll(database.DB)
	}),
}
