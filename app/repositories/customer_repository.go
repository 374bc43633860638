package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/pkg/orm"
	"gorm.io/gorm"
)

// ErrUnknownOrderKey is returned when a caller asks to order a listing
// by a field that is not in the entity's allow-list.
var ErrUnknownOrderKey = errors.New("unknown ordering key")

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct {
	q *orm.Query
}

func NewCustomerRepository(q *orm.Query) *CustomerRepository {
	return &CustomerRepository{q: q}
}

// customerOrderColumns is the allow-list of orderBy keys for customers.
var customerOrderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

// CustomerFilter narrows a customer listing. Zero values mean "no
// constraint".
type CustomerFilter struct {
	NameContains  string
	EmailContains string
	PhonePrefix   string
	CreatedGte    *time.Time
	CreatedLte    *time.Time
}

// FindByEmail looks up a customer by exact, case-sensitive email.
// Returns (nil, nil) when no customer holds the address.
func (r *CustomerRepository) FindByEmail(email string) (*models.Customer, error) {
	var c models.Customer
	err := r.q.Model(&models.Customer{}).Where("email = ?", email).First(&c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("customers: find by email: %w", err)
	}
	return &c, nil
}

// FindByID looks up a customer by primary key. Returns (nil, nil) when
// the id does not exist.
func (r *CustomerRepository) FindByID(id uint) (*models.Customer, error) {
	var c models.Customer
	err := r.q.Model(&models.Customer{}).Where("id = ?", id).First(&c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("customers: find by id: %w", err)
	}
	return &c, nil
}

// Create persists a new customer record.
func (r *CustomerRepository) Create(c *models.Customer) error {
	if err := r.q.Create(c); err != nil {
		return fmt.Errorf("customers: create: %w", err)
	}
	return nil
}

// List returns every customer matching the filter, ordered by the given
// key (empty key keeps insertion order).
func (r *CustomerRepository) List(f CustomerFilter, orderBy string) ([]models.Customer, error) {
	orderExpr, ok := OrderClause(orderBy, customerOrderColumns)
	if !ok {
		return nil, fmt.Errorf("customers: %w: %q", ErrUnknownOrderKey, orderBy)
	}

	q := r.q.Model(&models.Customer{})
	if f.NameContains != "" {
		q = q.Where("name LIKE ?", "%"+f.NameContains+"%")
	}
	if f.EmailContains != "" {
		q = q.Where("email LIKE ?", "%"+f.EmailContains+"%")
	}
	if f.PhonePrefix != "" {
		q = q.Where("phone LIKE ?", f.PhonePrefix+"%")
	}
	if f.CreatedGte != nil {
		q = q.Where("created_at >= ?", *f.CreatedGte)
	}
	if f.CreatedLte != nil {
		q = q.Where("created_at <= ?", *f.CreatedLte)
	}
	if orderExpr != "" {
		q = q.Order(orderExpr)
	}

	var customers []models.Customer
	if err := q.Get(&customers); err != nil {
		return nil, fmt.Errorf("customers: list: %w", err)
	}
	return customers, nil
}

// Count returns the total number of customers.
func (r *CustomerRepository) Count() (int64, error) {
	var n int64
	if err := r.q.Model(&models.Customer{}).Count(&n); err != nil {
		return 0, fmt.Errorf("customers: count: %w", err)
	}
	return n, nil
}
