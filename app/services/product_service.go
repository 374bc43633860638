package services

import (
	"fmt"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/repositories"
	"github.com/shashiranjanraj/charvi/app/validation"
	"github.com/shashiranjanraj/charvi/pkg/event"
	"github.com/shashiranjanraj/charvi/pkg/metrics"
	"github.com/shashiranjanraj/charvi/pkg/orm"
	"github.com/shashiranjanraj/charvi/pkg/validate"
)

// CreateProductInput is the request shape for createProduct. Stock is a
// pointer so "absent" (defaults to 0) and "explicitly 0" both work while
// a negative value can still be rejected.
type CreateProductInput struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Price float64 `json:"price"`
	Stock *int    `json:"stock"`
}

// RestockResult is the report returned by UpdateLowStock. Success is
// always true: finding nothing to restock is not an error condition.
type RestockResult struct {
	Success         bool
	Message         string
	UpdatedProducts []string
}

// restockIncrement is the fixed amount added to each low-stock product.
// The restock is a simulation, not demand-driven.
const restockIncrement = 10

// ProductService implements the product mutation operations.
type ProductService struct {
	q *orm.Query
}

func NewProductService(q *orm.Query) *ProductService {
	return &ProductService{q: q}
}

// Create validates and persists a single product: price first, then
// stock, fail-fast. Product names carry no uniqueness constraint.
func (s *ProductService) Create(input CreateProductInput) (models.Product, error) {
	var created models.Product

	err := s.q.Transaction(func(tx *orm.Query) error {
		if errs := validate.Struct(&input); validate.HasErrors(errs) {
			return firstValidationError(errs, []string{"name"})
		}
		if err := validation.Price(input.Price); err != nil {
			return err
		}
		stock := 0
		if input.Stock != nil {
			stock = *input.Stock
		}
		if err := validation.Stock(stock); err != nil {
			return err
		}

		p := &models.Product{
			Name:  input.Name,
			Price: input.Price,
			Stock: stock,
		}
		if err := repositories.NewProductRepository(tx).Create(p); err != nil {
			return err
		}
		created = *p
		return nil
	})
	if err != nil {
		metrics.RecordMutation("createProduct", "error")
		return models.Product{}, err
	}

	metrics.RecordMutation("createProduct", "success")
	return created, nil
}

// UpdateLowStock increments the stock of every product currently under
// the low-stock threshold by a fixed amount. The select-then-increment
// runs in one transaction with row locks (where the driver supports
// them), so overlapping invocations cannot double-increment a product.
func (s *ProductService) UpdateLowStock() (RestockResult, error) {
	var updated []string

	err := s.q.Transaction(func(tx *orm.Query) error {
		repo := repositories.NewProductRepository(tx)

		low, err := repo.FindLowStockForUpdate(repositories.LowStockThreshold)
		if err != nil {
			return err
		}

		for i := range low {
			low[i].Stock += restockIncrement
			if err := repo.Save(&low[i]); err != nil {
				return err
			}
			updated = append(updated, fmt.Sprintf("%s (Stock: %d)", low[i].Name, low[i].Stock))
		}
		return nil
	})
	if err != nil {
		metrics.RecordMutation("updateLowStockProducts", "error")
		return RestockResult{}, fmt.Errorf("update low stock: %w", err)
	}

	metrics.RecordMutation("updateLowStockProducts", "success")

	if len(updated) == 0 {
		return RestockResult{
			Success:         true,
			Message:         "No low-stock products to update.",
			UpdatedProducts: []string{},
		}, nil
	}

	metrics.AddProductsRestocked(len(updated))
	event.Fire("products.restocked", updated)
	return RestockResult{
		Success:         true,
		Message:         "Low-stock products successfully updated!",
		UpdatedProducts: updated,
	}, nil
}

// List returns products matching the filter, ordered by orderBy.
func (s *ProductService) List(f repositories.ProductFilter, orderBy string) ([]models.Product, error) {
	return repositories.NewProductRepository(s.q).List(f, orderBy)
}
