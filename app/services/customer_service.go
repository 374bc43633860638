package services

import (
	"fmt"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/repositories"
	"github.com/shashiranjanraj/charvi/app/validation"
	"github.com/shashiranjanraj/charvi/pkg/event"
	"github.com/shashiranjanraj/charvi/pkg/logger"
	"github.com/shashiranjanraj/charvi/pkg/metrics"
	"github.com/shashiranjanraj/charvi/pkg/orm"
	"github.com/shashiranjanraj/charvi/pkg/validate"
)

// CreateCustomerInput is the request shape for createCustomer and each
// element of bulkCreateCustomers.
type CreateCustomerInput struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// BulkCreateResult is the mixed success/error report returned by
// BulkCreate. Customers and Errors each preserve the relative input
// order of the records they describe.
type BulkCreateResult struct {
	Customers []models.Customer
	Errors    []string
}

// CustomerService implements the customer mutation operations.
type CustomerService struct {
	q *orm.Query
}

func NewCustomerService(q *orm.Query) *CustomerService {
	return &CustomerService{q: q}
}

// Create validates and persists a single customer. Checks run fail-fast
// in contract order: input shape, then email uniqueness, then phone
// format. Any failure aborts the whole operation with no partial effect.
func (s *CustomerService) Create(input CreateCustomerInput) (models.Customer, string, error) {
	var created models.Customer

	err := s.q.Transaction(func(tx *orm.Query) error {
		store := repositories.NewStore(tx)

		c, err := validateAndBuildCustomer(store, input)
		if err != nil {
			return err
		}
		if err := store.Customers.Create(c); err != nil {
			return err
		}
		created = *c
		return nil
	})
	if err != nil {
		metrics.RecordMutation("createCustomer", "error")
		return models.Customer{}, "", err
	}

	metrics.RecordMutation("createCustomer", "success")
	event.Fire("customer.created", created)
	return created, "Customer created successfully", nil
}

// BulkCreate creates a batch of customers inside one transaction. The
// transaction wraps the whole loop, but each record is validated and
// created independently: a per-record failure is converted to an error
// string and the record is skipped — it never aborts the batch or rolls
// back records already created in the same call. The transaction
// boundary only protects against an infrastructure crash mid-loop.
func (s *CustomerService) BulkCreate(inputs []CreateCustomerInput) (BulkCreateResult, error) {
	result := BulkCreateResult{
		Customers: []models.Customer{},
		Errors:    []string{},
	}

	err := s.q.Transaction(func(tx *orm.Query) error {
		store := repositories.NewStore(tx)

		for _, input := range inputs {
			c, err := validateAndBuildCustomer(store, input)
			if err != nil {
				result.Errors = append(result.Errors, err.Error())
				continue
			}
			if err := store.Customers.Create(c); err != nil {
				// Infra-level failure on one record: report it and
				// keep the batch alive.
				result.Errors = append(result.Errors,
					fmt.Sprintf("Unexpected error for %s: %v", input.Name, err))
				continue
			}
			result.Customers = append(result.Customers, *c)
		}
		return nil
	})
	if err != nil {
		metrics.RecordMutation("bulkCreateCustomers", "error")
		return BulkCreateResult{}, fmt.Errorf("bulk create customers: %w", err)
	}

	metrics.RecordMutation("bulkCreateCustomers", "success")
	for _, c := range result.Customers {
		event.Fire("customer.created", c)
	}
	if len(result.Errors) > 0 {
		logger.Warn("customers: bulk create finished with per-record errors",
			"created", len(result.Customers), "failed", len(result.Errors))
	}
	return result, nil
}

// List returns customers matching the filter, ordered by orderBy.
func (s *CustomerService) List(f repositories.CustomerFilter, orderBy string) ([]models.Customer, error) {
	return repositories.NewStore(s.q).Customers.List(f, orderBy)
}

// validateAndBuildCustomer runs the full check sequence for one customer
// input against the given store snapshot and returns the record ready to
// persist.
func validateAndBuildCustomer(store *repositories.Store, input CreateCustomerInput) (*models.Customer, error) {
	if errs := validate.Struct(&input); validate.HasErrors(errs) {
		return nil, firstValidationError(errs, []string{"name", "email"})
	}
	if err := validation.Email(store, input.Email); err != nil {
		return nil, err
	}
	if err := validation.Phone(input.Phone); err != nil {
		return nil, err
	}
	return &models.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}, nil
}

// firstValidationError picks a deterministic message out of the
// field→message map returned by validate.Struct, preferring fields in
// the given order.
func firstValidationError(errs map[string]string, order []string) error {
	for _, field := range order {
		if msg, ok := errs[field]; ok {
			return fmt.Errorf("%s", msg)
		}
	}
	for _, msg := range errs {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
