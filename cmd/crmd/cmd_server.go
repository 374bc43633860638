package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/charvi/app/schema"
	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/internal/kernel"
	"github.com/shashiranjanraj/charvi/internal/server"
	"github.com/shashiranjanraj/charvi/pkg/orm"
)

// crmd serve
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"start", "run"},
	Short:   "Start the HTTP + gRPC server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// crmd route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List registered API routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Handlers never run here, so a disconnected query is fine.
		q := orm.New(nil)
		k, err := kernel.NewHTTPKernel(&schema.Resolver{
			Customers: services.NewCustomerService(q),
			Products:  services.NewProductService(q),
			Orders:    services.NewOrderService(q),
			Reports:   services.NewReportService(q),
		})
		if err != nil {
			return err
		}

		routes := k.Routes()
		if len(routes) == 0 {
			fmt.Println("No routes registered.")
			return nil
		}

		fmt.Printf("%-8s  %-40s  %s\n", "METHOD", "PATH", "NAME")
		for _, ri := range routes {
			fmt.Printf("%-8s  %-40s  %s\n", ri.Method, ri.Path, ri.Name)
		}
		return nil
	},
}
