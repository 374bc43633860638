package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/charvi/app/jobs"
	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/pkg/cache"
	"github.com/shashiranjanraj/charvi/pkg/database"
	"github.com/shashiranjanraj/charvi/pkg/orm"
	"github.com/shashiranjanraj/charvi/pkg/schedule"
	"github.com/shashiranjanraj/charvi/pkg/storage"
)

// crmd jobs:list
var jobsListCmd = &cobra.Command{
	Use:   "jobs:list",
	Short: "List the scheduled background jobs and their cadence",
	Run: func(cmd *cobra.Command, args []string) {
		// Registering with empty deps is safe here: the closures only
		// run when the scheduler starts, and it never does in this command.
		jobs.Register(&jobs.Deps{})
		for _, entry := range schedule.List() {
			fmt.Println(" ", entry)
		}
	},
}

// crmd jobs:run <name>
var jobsRunCmd = &cobra.Command{
	Use:   "jobs:run <name>",
	Short: "Run a scheduled job once, immediately",
	Args:  cobra.ExactArgs(1),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		_ = cache.Connect() // optional; jobs degrade gracefully without it
		storage.Connect()

		q := orm.New(database.DB)
		deps := &jobs.Deps{
			Products: services.NewProductService(q),
			Orders:   services.NewOrderService(q),
			Reports:  services.NewReportService(q),
		}
		return jobs.Run(args[0], deps)
	}),
}
