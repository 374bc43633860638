package services

import (
	"time"

	"github.com/shashiranjanraj/charvi/app/repositories"
	"github.com/shashiranjanraj/charvi/pkg/cache"
	"github.com/shashiranjanraj/charvi/pkg/orm"
)

// Report is the read-only aggregate consumed by the weekly report job
// and the customersCount/ordersCount/totalRevenue query fields.
type Report struct {
	Customers    int64     `json:"customers"`
	Orders       int64     `json:"orders"`
	TotalRevenue float64   `json:"total_revenue"`
	GeneratedAt  time.Time `json:"generated_at"`
}

const reportCacheKey = "crm:report:latest"
const reportCacheTTL = 5 * time.Minute

// ReportService builds count/revenue aggregates over the entity store.
type ReportService struct {
	q *orm.Query
}

func NewReportService(q *orm.Query) *ReportService {
	return &ReportService{q: q}
}

// Snapshot computes the aggregate fresh from the store and refreshes the
// cached copy.
func (s *ReportService) Snapshot() (Report, error) {
	store := repositories.NewStore(s.q)

	customers, err := store.Customers.Count()
	if err != nil {
		return Report{}, err
	}
	orders, err := store.Orders.Count()
	if err != nil {
		return Report{}, err
	}
	revenue, err := store.Orders.TotalRevenue()
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Customers:    customers,
		Orders:       orders,
		TotalRevenue: revenue,
		GeneratedAt:  time.Now(),
	}
	_ = cache.Set(reportCacheKey, report, reportCacheTTL)
	return report, nil
}

// Cached returns the last cached report, falling back to a fresh
// Snapshot on a cache miss.
func (s *ReportService) Cached() (Report, error) {
	var report Report
	err := cache.Remember(reportCacheKey, reportCacheTTL, &report, func() (interface{}, error) {
		return s.Snapshot()
	})
	return report, err
}
