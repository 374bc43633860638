package jobs

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/config"
	"github.com/shashiranjanraj/charvi/pkg/logger"
	"github.com/shashiranjanraj/charvi/pkg/storage"
)

// Report logs a summary of CRM activity and archives it as a CSV on the
// configured storage disk.
func Report(reports *services.ReportService) {
	rep, err := reports.Snapshot()
	if err != nil {
		logger.Error("report: snapshot failed", "error", err)
		return
	}

	logger.Info(fmt.Sprintf("Report: %d customers, %d orders, %.2f revenue",
		rep.Customers, rep.Orders, rep.TotalRevenue))

	path := fmt.Sprintf("%s/crm-report-%s.csv",
		config.ReportDirectory(), rep.GeneratedAt.Format("2006-01-02"))
	if err := storage.Put(path, reportCSV(rep)); err != nil {
		logger.Error("report: archive failed", "path", path, "error", err)
		return
	}
	logger.Info("report: archived", "path", path)
}

func reportCSV(rep services.Report) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"generated_at", "customers", "orders", "total_revenue"})
	_ = w.Write([]string{
		rep.GeneratedAt.Format(time.RFC3339),
		fmt.Sprintf("%d", rep.Customers),
		fmt.Sprintf("%d", rep.Orders),
		fmt.Sprintf("%.2f", rep.TotalRevenue),
	})
	w.Flush()
	return buf.Bytes()
}
