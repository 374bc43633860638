package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/charvi/app/services"
)

func TestReportSnapshot(t *testing.T) {
	q := newTestQuery(t)
	customerID, productIDs := seedOrderFixtures(t, q)

	orders := services.NewOrderService(q)
	_, err := orders.Create(services.CreateOrderInput{CustomerID: customerID, ProductIDs: productIDs})
	require.NoError(t, err)
	_, err = orders.Create(services.CreateOrderInput{CustomerID: customerID, ProductIDs: productIDs[1:]})
	require.NoError(t, err)

	report, err := services.NewReportService(q).Snapshot()
	require.NoError(t, err)
	require.EqualValues(t, 1, report.Customers)
	require.EqualValues(t, 2, report.Orders)
	require.InDelta(t, 1050.99, report.TotalRevenue, 1e-9)
	require.False(t, report.GeneratedAt.IsZero())
}

func TestReportSnapshotEmptyStore(t *testing.T) {
	report, err := services.NewReportService(newTestQuery(t)).Snapshot()
	require.NoError(t, err)
	require.Zero(t, report.Customers)
	require.Zero(t, report.Orders)
	require.Zero(t, report.TotalRevenue)
}
