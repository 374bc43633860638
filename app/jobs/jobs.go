// Package jobs holds the scheduled background work of the CRM: the
// liveness heartbeat, low-stock restocking, order reminders and the
// weekly activity report. Register wires them into the scheduler; Run
// executes a single job by name for the jobs:run CLI command.
package jobs

import (
	"fmt"
	"strings"

	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/pkg/schedule"
)

// Deps carries the services the jobs operate on.
type Deps struct {
	Products *services.ProductService
	Orders   *services.OrderService
	Reports  *services.ReportService
}

// Register adds every job to the global scheduler. Call once at boot,
// before schedule.Start.
func Register(d *Deps) {
	schedule.Every(5).Minutes().
		Name("heartbeat").
		Run(func() { Heartbeat() })

	schedule.Every(12).Hours().
		WithoutOverlapping().
		Name("restock").
		Run(func() { Restock(d.Products) })

	schedule.Daily().
		Name("order-reminders").
		Run(func() { OrderReminders(d.Orders) })

	schedule.Weekly().
		Name("report").
		Run(func() { Report(d.Reports) })
}

// Run executes the named job immediately, outside the scheduler.
func Run(name string, d *Deps) error {
	switch name {
	case "heartbeat":
		Heartbeat()
	case "restock":
		Restock(d.Products)
	case "order-reminders":
		OrderReminders(d.Orders)
	case "report":
		Report(d.Reports)
	default:
		return fmt.Errorf("jobs: unknown job %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return nil
}

// Names lists the runnable job names for CLI display.
func Names() []string {
	return []string{"heartbeat", "restock", "order-reminders", "report"}
}
