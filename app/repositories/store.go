package repositories

import (
	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/pkg/orm"
)

// Store bundles the three entity repositories over one connection (or
// one transaction handle). It satisfies validation.Finder, giving the
// validation layer read-only access to the same snapshot the writes see.
type Store struct {
	Customers *CustomerRepository
	Products  *ProductRepository
	Orders    *OrderRepository
}

func NewStore(q *orm.Query) *Store {
	return &Store{
		Customers: NewCustomerRepository(q),
		Products:  NewProductRepository(q),
		Orders:    NewOrderRepository(q),
	}
}

// ─── validation.Finder ────────────────────────────────────────────────────────

func (s *Store) CustomerByEmail(email string) (*models.Customer, error) {
	return s.Customers.FindByEmail(email)
}

func (s *Store) CustomerByID(id uint) (*models.Customer, error) {
	return s.Customers.FindByID(id)
}

func (s *Store) ProductsByIDs(ids []uint) ([]models.Product, error) {
	return s.Products.FindByIDs(ids)
}
