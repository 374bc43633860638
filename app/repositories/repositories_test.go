package repositories_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/repositories"
	"github.com/shashiranjanraj/charvi/pkg/orm"
)

func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))

	return repositories.NewStore(orm.New(db))
}

func TestCustomerFindByEmailMissing(t *testing.T) {
	store := newTestStore(t)

	c, err := store.Customers.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, c)

	c, err = store.Customers.FindByID(42)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestCustomerListFilterAndOrder(t *testing.T) {
	store := newTestStore(t)

	for _, c := range []models.Customer{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
		{Name: "Alicia", Email: "alicia@corp.example.com"},
	} {
		c := c
		require.NoError(t, store.Customers.Create(&c))
	}

	// Substring filter on name.
	got, err := store.Customers.List(repositories.CustomerFilter{NameContains: "Ali"}, "name")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Alice", got[0].Name)
	require.Equal(t, "Alicia", got[1].Name)

	// Descending order via the "-field" convention.
	got, err = store.Customers.List(repositories.CustomerFilter{}, "-name")
	require.NoError(t, err)
	require.Equal(t, []string{"Bob", "Alicia", "Alice"},
		[]string{got[0].Name, got[1].Name, got[2].Name})

	// Phone prefix filter.
	got, err = store.Customers.List(repositories.CustomerFilter{PhonePrefix: "+1"}, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Alice", got[0].Name)

	// Ordering keys outside the allow-list are rejected.
	_, err = store.Customers.List(repositories.CustomerFilter{}, "phone; DROP TABLE customers")
	require.True(t, errors.Is(err, repositories.ErrUnknownOrderKey))
}

func TestProductFindByIDsSkipsMissing(t *testing.T) {
	store := newTestStore(t)

	laptop := models.Product{Name: "Laptop", Price: 999.99, Stock: 10}
	require.NoError(t, store.Products.Create(&laptop))

	got, err := store.Products.FindByIDs([]uint{laptop.ID, 999})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Laptop", got[0].Name)

	got, err = store.Products.FindByIDs(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestProductListLowStockFilter(t *testing.T) {
	store := newTestStore(t)

	for _, p := range []models.Product{
		{Name: "Laptop", Price: 999.99, Stock: 3},
		{Name: "Mouse", Price: 25.50, Stock: 100},
		{Name: "Keyboard", Price: 49.99, Stock: 10},
	} {
		p := p
		require.NoError(t, store.Products.Create(&p))
	}

	got, err := store.Products.List(repositories.ProductFilter{LowStock: true}, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Laptop", got[0].Name)

	min := 40.0
	got, err = store.Products.List(repositories.ProductFilter{PriceGte: &min}, "-price")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Laptop", got[0].Name)
	require.Equal(t, "Keyboard", got[1].Name)
}

func TestOrderListJoinsAndRevenue(t *testing.T) {
	store := newTestStore(t)

	alice := models.Customer{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, store.Customers.Create(&alice))
	bob := models.Customer{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, store.Customers.Create(&bob))

	laptop := models.Product{Name: "Laptop", Price: 999.99, Stock: 10}
	require.NoError(t, store.Products.Create(&laptop))
	mouse := models.Product{Name: "Mouse", Price: 25.50, Stock: 100}
	require.NoError(t, store.Products.Create(&mouse))

	first := models.Order{
		CustomerID:  alice.ID,
		Products:    []models.Product{laptop, mouse},
		TotalAmount: 1025.49,
		OrderDate:   time.Now(),
	}
	require.NoError(t, store.Orders.Create(&first))
	second := models.Order{
		CustomerID:  bob.ID,
		Products:    []models.Product{mouse},
		TotalAmount: 25.50,
		OrderDate:   time.Now().AddDate(0, 0, -3),
	}
	require.NoError(t, store.Orders.Create(&second))

	// Filter by related customer name.
	got, err := store.Orders.List(repositories.OrderFilter{CustomerName: "Alice"}, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, first.ID, got[0].ID)
	require.Len(t, got[0].Products, 2)

	// Filter by product id; orders joining the same product twice must
	// not duplicate.
	got, err = store.Orders.List(repositories.OrderFilter{ProductID: &mouse.ID}, "-order_date")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, first.ID, got[0].ID)

	// Filter by total amount band.
	hi := 100.0
	got, err = store.Orders.List(repositories.OrderFilter{TotalLte: &hi}, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, second.ID, got[0].ID)

	revenue, err := store.Orders.TotalRevenue()
	require.NoError(t, err)
	require.InDelta(t, 1050.99, revenue, 1e-9)

	count, err := store.Orders.Count()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestTotalRevenueEmptyIsZero(t *testing.T) {
	store := newTestStore(t)

	revenue, err := store.Orders.TotalRevenue()
	require.NoError(t, err)
	require.Zero(t, revenue)
}

func TestOrderClause(t *testing.T) {
	columns := map[string]string{"name": "name", "created_at": "created_at"}

	expr, ok := repositories.OrderClause("", columns)
	require.True(t, ok)
	require.Empty(t, expr)

	expr, ok = repositories.OrderClause("name", columns)
	require.True(t, ok)
	require.Equal(t, "name ASC", expr)

	expr, ok = repositories.OrderClause("-created_at", columns)
	require.True(t, ok)
	require.Equal(t, "created_at DESC", expr)

	_, ok = repositories.OrderClause("password", columns)
	require.False(t, ok)
}
