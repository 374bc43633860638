package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/repositories"
	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/app/validation"
	"github.com/shashiranjanraj/charvi/pkg/orm"
)

// seedOrderFixtures inserts Alice plus the Laptop/Mouse catalogue and
// returns their ids.
func seedOrderFixtures(t *testing.T, q *orm.Query) (customerID uint, productIDs []uint) {
	t.Helper()

	customers := services.NewCustomerService(q)
	products := services.NewProductService(q)

	alice, _, err := customers.Create(services.CreateCustomerInput{
		Name: "Alice", Email: "alice@example.com", Phone: "+1234567890",
	})
	require.NoError(t, err)

	ten, hundred := 10, 100
	laptop, err := products.Create(services.CreateProductInput{Name: "Laptop", Price: 999.99, Stock: &ten})
	require.NoError(t, err)
	mouse, err := products.Create(services.CreateProductInput{Name: "Mouse", Price: 25.50, Stock: &hundred})
	require.NoError(t, err)

	return alice.ID, []uint{laptop.ID, mouse.ID}
}

func TestCreateOrderTotalsProductPrices(t *testing.T) {
	q := newTestQuery(t)
	customerID, productIDs := seedOrderFixtures(t, q)
	svc := services.NewOrderService(q)

	before := time.Now()
	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customerID,
		ProductIDs: productIDs,
	})
	require.NoError(t, err)

	require.NotZero(t, order.ID)
	require.Equal(t, 1025.49, order.TotalAmount)
	require.Len(t, order.Products, 2)
	require.False(t, order.OrderDate.Before(before.Add(-time.Second)))
}

func TestCreateOrderExplicitDate(t *testing.T) {
	q := newTestQuery(t)
	customerID, productIDs := seedOrderFixtures(t, q)
	svc := services.NewOrderService(q)

	when := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customerID,
		ProductIDs: productIDs[:1],
		OrderDate:  &when,
	})
	require.NoError(t, err)
	require.True(t, order.OrderDate.Equal(when))
	require.Equal(t, 999.99, order.TotalAmount)
}

func TestCreateOrderInvalidCustomer(t *testing.T) {
	q := newTestQuery(t)
	_, productIDs := seedOrderFixtures(t, q)
	svc := services.NewOrderService(q)

	_, err := svc.Create(services.CreateOrderInput{CustomerID: 9999, ProductIDs: productIDs})
	require.True(t, errors.Is(err, validation.ErrCustomerNotFound))
}

func TestCreateOrderNoProducts(t *testing.T) {
	q := newTestQuery(t)
	customerID, _ := seedOrderFixtures(t, q)
	svc := services.NewOrderService(q)

	_, err := svc.Create(services.CreateOrderInput{CustomerID: customerID})
	require.True(t, errors.Is(err, validation.ErrNoProductsProvided))

	_, err = svc.Create(services.CreateOrderInput{CustomerID: customerID, ProductIDs: []uint{777}})
	require.True(t, errors.Is(err, validation.ErrProductsNotFound))
}

func TestCreateOrderPartialProductMatch(t *testing.T) {
	q := newTestQuery(t)
	customerID, productIDs := seedOrderFixtures(t, q)
	svc := services.NewOrderService(q)

	// One valid id plus one bogus one: the order is created from the
	// resolved subset only.
	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customerID,
		ProductIDs: []uint{productIDs[0], 9999},
	})
	require.NoError(t, err)
	require.Len(t, order.Products, 1)
	require.Equal(t, 999.99, order.TotalAmount)
}

func TestOrderListAndSince(t *testing.T) {
	q := newTestQuery(t)
	customerID, productIDs := seedOrderFixtures(t, q)
	svc := services.NewOrderService(q)

	old := time.Now().AddDate(0, 0, -30)
	_, err := svc.Create(services.CreateOrderInput{
		CustomerID: customerID, ProductIDs: productIDs, OrderDate: &old,
	})
	require.NoError(t, err)
	recent, err := svc.Create(services.CreateOrderInput{
		CustomerID: customerID, ProductIDs: productIDs[:1],
	})
	require.NoError(t, err)

	all, err := svc.List(repositories.OrderFilter{}, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Preloads hydrate the customer on every listed order.
	for _, o := range all {
		require.Equal(t, "Alice", o.Customer.Name)
	}

	within, err := svc.Since(time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, within, 1)
	require.Equal(t, recent.ID, within[0].ID)
}

func TestOrderPriceSnapshotSurvivesPriceChange(t *testing.T) {
	q := newTestQuery(t)
	customerID, productIDs := seedOrderFixtures(t, q)
	svc := services.NewOrderService(q)

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customerID, ProductIDs: productIDs,
	})
	require.NoError(t, err)

	// Reprice the laptop after the fact.
	var laptop models.Product
	require.NoError(t, q.Gorm().First(&laptop, productIDs[0]).Error)
	laptop.Price = 1.00
	require.NoError(t, q.Gorm().Save(&laptop).Error)

	var reloaded models.Order
	require.NoError(t, q.Gorm().First(&reloaded, order.ID).Error)
	require.Equal(t, 1025.49, reloaded.TotalAmount)
}
