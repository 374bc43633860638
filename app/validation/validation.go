// Package validation holds the invariant checks applied before any CRM
// write. Every check is a pure function: store-dependent checks take a
// read-only Finder so they can run against a live database or a test
// snapshot without change.
//
// The error sentinels below are the complete set of validation failure
// kinds. Callers distinguish them with errors.Is; the wrapped form keeps
// the offending value in the message (e.g. "Email already exists:
// bob@example.com"), which is the exact string surfaced per item by
// bulk creation.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shashiranjanraj/charvi/app/models"
)

var (
	ErrDuplicateEmail     = errors.New("Email already exists")
	ErrInvalidPhoneFormat = errors.New("Invalid phone format")
	ErrNonPositivePrice   = errors.New("Price must be positive")
	ErrNegativeStock      = errors.New("Stock cannot be negative")
	ErrCustomerNotFound   = errors.New("Customer not found")
	ErrNoProductsProvided = errors.New("No products provided")
	ErrProductsNotFound   = errors.New("No valid products found")
)

// phoneRE accepts an optional leading + followed by a digit and 7-14
// digits or hyphens, e.g. "+1234567890" or "123-456-7890".
var phoneRE = regexp.MustCompile(`^\+?\d[\d\-]{7,14}$`)

// Finder is the read-only store access the checks need. Repositories
// satisfy it; tests can use any snapshot.
type Finder interface {
	// CustomerByEmail returns (nil, nil) when no customer has the email.
	CustomerByEmail(email string) (*models.Customer, error)
	// CustomerByID returns (nil, nil) when the id does not exist.
	CustomerByID(id uint) (*models.Customer, error)
	// ProductsByIDs returns the products whose ids exist, in id order.
	// Missing ids are simply absent from the result.
	ProductsByIDs(ids []uint) ([]models.Product, error)
}

// Email fails with ErrDuplicateEmail when another customer already holds
// the address. The match is case-sensitive and exact, mirroring the
// store's unique index semantics.
func Email(f Finder, email string) error {
	existing, err := f.CustomerByEmail(email)
	if err != nil {
		return fmt.Errorf("lookup email %q: %w", email, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
	}
	return nil
}

// Phone validates the optional phone field. An empty phone is always
// valid.
func Phone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRE.MatchString(phone) {
		return fmt.Errorf("%w: %s", ErrInvalidPhoneFormat, phone)
	}
	return nil
}

// Price requires a strictly positive price.
func Price(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositivePrice, price)
	}
	return nil
}

// Stock requires a non-negative stock level. An absent stock defaults to
// zero upstream, which is valid.
func Stock(stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeStock, stock)
	}
	return nil
}

// CustomerRef resolves a customer id, failing with ErrCustomerNotFound
// when it does not exist.
func CustomerRef(f Finder, id uint) (*models.Customer, error) {
	c, err := f.CustomerByID(id)
	if err != nil {
		return nil, fmt.Errorf("lookup customer %d: %w", id, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %d", ErrCustomerNotFound, id)
	}
	return c, nil
}

// ProductRefs resolves product ids. An empty input fails with
// ErrNoProductsProvided; a resolution where nothing matches fails with
// ErrProductsNotFound. A partial match returns only the resolved subset:
// callers that care about the discrepancy compare len(result) to
// len(ids).
func ProductRefs(f Finder, ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, ErrNoProductsProvided
	}
	products, err := f.ProductsByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("lookup products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrProductsNotFound
	}
	return products, nil
}
