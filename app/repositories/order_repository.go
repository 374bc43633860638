package repositories

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/pkg/orm"
)

// OrderRepository handles database operations for Order, including the
// order_products associations.
type OrderRepository struct {
	q *orm.Query
}

func NewOrderRepository(q *orm.Query) *OrderRepository {
	return &OrderRepository{q: q}
}

var orderOrderColumns = map[string]string{
	"id":           "id",
	"order_date":   "order_date",
	"total_amount": "total_amount",
	"created_at":   "created_at",
}

// OrderFilter narrows an order listing. ProductID, CustomerName and
// ProductNameContains join through the association tables.
type OrderFilter struct {
	CustomerID          *uint
	TotalGte            *float64
	TotalLte            *float64
	OrderDateGte        *time.Time
	OrderDateLte        *time.Time
	ProductID           *uint
	CustomerName        string
	ProductNameContains string
}

// Create persists the order and its product associations as a single
// unit. GORM writes the orders row and the order_products rows in the
// same transaction; within a service-level transaction handle the whole
// set rolls back together.
func (r *OrderRepository) Create(o *models.Order) error {
	if err := r.q.Create(o); err != nil {
		return fmt.Errorf("orders: create: %w", err)
	}
	return nil
}

// Since returns all orders with an order date at or after t, with the
// customer preloaded. Used by the order-reminder job.
func (r *OrderRepository) Since(t time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.q.
		Model(&models.Order{}).
		Preload("Customer").
		Where("order_date >= ?", t).
		Order("order_date ASC").
		Get(&orders)
	if err != nil {
		return nil, fmt.Errorf("orders: since %s: %w", t.Format(time.RFC3339), err)
	}
	return orders, nil
}

// List returns every order matching the filter with customer and
// products preloaded, ordered by the given key.
func (r *OrderRepository) List(f OrderFilter, orderBy string) ([]models.Order, error) {
	orderExpr, ok := OrderClause(orderBy, orderOrderColumns)
	if !ok {
		return nil, fmt.Errorf("orders: %w: %q", ErrUnknownOrderKey, orderBy)
	}

	db := r.q.Gorm().Model(&models.Order{}).Preload("Customer").Preload("Products")

	if f.CustomerID != nil {
		db = db.Where("orders.customer_id = ?", *f.CustomerID)
	}
	if f.TotalGte != nil {
		db = db.Where("orders.total_amount >= ?", *f.TotalGte)
	}
	if f.TotalLte != nil {
		db = db.Where("orders.total_amount <= ?", *f.TotalLte)
	}
	if f.OrderDateGte != nil {
		db = db.Where("orders.order_date >= ?", *f.OrderDateGte)
	}
	if f.OrderDateLte != nil {
		db = db.Where("orders.order_date <= ?", *f.OrderDateLte)
	}
	if f.CustomerName != "" {
		db = db.Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("customers.name = ?", f.CustomerName)
	}
	if f.ProductID != nil || f.ProductNameContains != "" {
		db = db.Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Distinct("orders.*")
		if f.ProductID != nil {
			db = db.Where("products.id = ?", *f.ProductID)
		}
		if f.ProductNameContains != "" {
			db = db.Where("products.name LIKE ?", "%"+f.ProductNameContains+"%")
		}
	}
	if orderExpr != "" {
		db = db.Order("orders." + orderExpr)
	}

	var orders []models.Order
	if err := db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("orders: list: %w", err)
	}
	return orders, nil
}

// Count returns the total number of orders.
func (r *OrderRepository) Count() (int64, error) {
	var n int64
	if err := r.q.Model(&models.Order{}).Count(&n); err != nil {
		return 0, fmt.Errorf("orders: count: %w", err)
	}
	return n, nil
}

// TotalRevenue sums total_amount across all orders. Because each total
// is a creation-time snapshot, the sum is stable under later price
// changes.
func (r *OrderRepository) TotalRevenue() (float64, error) {
	var revenue float64
	err := r.q.Gorm().
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, fmt.Errorf("orders: total revenue: %w", err)
	}
	return revenue, nil
}
