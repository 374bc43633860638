package services

import (
	"time"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/repositories"
	"github.com/shashiranjanraj/charvi/app/validation"
	"github.com/shashiranjanraj/charvi/pkg/event"
	"github.com/shashiranjanraj/charvi/pkg/logger"
	"github.com/shashiranjanraj/charvi/pkg/metrics"
	"github.com/shashiranjanraj/charvi/pkg/orm"
)

// CreateOrderInput is the request shape for createOrder. OrderDate is
// optional; a nil value defaults to the creation time.
type CreateOrderInput struct {
	CustomerID uint       `json:"customer_id"`
	ProductIDs []uint     `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date"`
}

// OrderService implements the order mutation operations.
type OrderService struct {
	q *orm.Query
}

func NewOrderService(q *orm.Query) *OrderService {
	return &OrderService{q: q}
}

// Create validates and persists an order. Steps run in contract order,
// each short-circuiting on failure:
//
//  1. resolve the customer reference
//  2. reject an empty product id list
//  3. resolve product ids — the operation fails only when nothing
//     resolves; a partial match proceeds with the resolved subset
//  4. total the resolved products' current prices (a snapshot — later
//     price changes never touch this order)
//  5. default the order date to now
//  6. persist the order and its product associations as one unit
func (s *OrderService) Create(input CreateOrderInput) (models.Order, error) {
	var created models.Order

	err := s.q.Transaction(func(tx *orm.Query) error {
		store := repositories.NewStore(tx)

		customer, err := validation.CustomerRef(store, input.CustomerID)
		if err != nil {
			return err
		}

		products, err := validation.ProductRefs(store, input.ProductIDs)
		if err != nil {
			return err
		}
		if len(products) < len(input.ProductIDs) {
			// Documented laxity: unresolved ids are skipped silently at
			// the API level, but operators get a trace.
			logger.Warn("orders: some product ids did not resolve",
				"requested", len(input.ProductIDs), "resolved", len(products))
		}

		var total float64
		for _, p := range products {
			total += p.Price
		}

		orderDate := time.Now()
		if input.OrderDate != nil {
			orderDate = *input.OrderDate
		}

		o := &models.Order{
			CustomerID:  customer.ID,
			Customer:    *customer,
			Products:    products,
			TotalAmount: total,
			OrderDate:   orderDate,
		}
		if err := store.Orders.Create(o); err != nil {
			return err
		}
		created = *o
		return nil
	})
	if err != nil {
		metrics.RecordMutation("createOrder", "error")
		return models.Order{}, err
	}

	metrics.RecordMutation("createOrder", "success")
	event.Fire("order.created", created)
	return created, nil
}

// List returns orders matching the filter, ordered by orderBy.
func (s *OrderService) List(f repositories.OrderFilter, orderBy string) ([]models.Order, error) {
	return repositories.NewOrderRepository(s.q).List(f, orderBy)
}

// Since returns all orders placed at or after t, customer preloaded.
func (s *OrderService) Since(t time.Time) ([]models.Order, error) {
	return repositories.NewOrderRepository(s.q).Since(t)
}
