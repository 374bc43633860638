package validation_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/validation"
)

// fakeFinder is an in-memory Finder snapshot.
type fakeFinder struct {
	customers []models.Customer
	products  []models.Product
}

func (f *fakeFinder) CustomerByEmail(email string) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].Email == email {
			return &f.customers[i], nil
		}
	}
	return nil, nil
}

func (f *fakeFinder) CustomerByID(id uint) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			return &f.customers[i], nil
		}
	}
	return nil, nil
}

func (f *fakeFinder) ProductsByIDs(ids []uint) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func TestEmailUnique(t *testing.T) {
	f := &fakeFinder{}
	if err := validation.Email(f, "new@example.com"); err != nil {
		t.Fatalf("expected fresh email to pass, got %v", err)
	}

	f.customers = append(f.customers, models.Customer{Email: "bob@example.com"})
	err := validation.Email(f, "bob@example.com")
	if !errors.Is(err, validation.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if err.Error() != "Email already exists: bob@example.com" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestPhoneFormats(t *testing.T) {
	valid := []string{"", "+1234567890", "123-456-7890", "1234567890"}
	for _, phone := range valid {
		if err := validation.Phone(phone); err != nil {
			t.Errorf("expected %q to be valid, got %v", phone, err)
		}
	}

	invalid := []string{"abc", "12", "++1234567890", "phone-number-here"}
	for _, phone := range invalid {
		err := validation.Phone(phone)
		if !errors.Is(err, validation.ErrInvalidPhoneFormat) {
			t.Errorf("expected %q to be invalid, got %v", phone, err)
		}
	}
}

func TestPriceMustBePositive(t *testing.T) {
	if err := validation.Price(999.99); err != nil {
		t.Fatalf("expected positive price to pass, got %v", err)
	}
	for _, price := range []float64{0, -1, -999.99} {
		if !errors.Is(validation.Price(price), validation.ErrNonPositivePrice) {
			t.Errorf("expected price %v to fail", price)
		}
	}
}

func TestStockNonNegative(t *testing.T) {
	for _, stock := range []int{0, 1, 100} {
		if err := validation.Stock(stock); err != nil {
			t.Errorf("expected stock %d to pass, got %v", stock, err)
		}
	}
	if !errors.Is(validation.Stock(-1), validation.ErrNegativeStock) {
		t.Error("expected negative stock to fail")
	}
}

func TestCustomerRef(t *testing.T) {
	f := &fakeFinder{customers: []models.Customer{{Email: "a@example.com"}}}
	f.customers[0].ID = 7

	c, err := validation.CustomerRef(f, 7)
	if err != nil || c == nil || c.ID != 7 {
		t.Fatalf("expected customer 7, got %v / %v", c, err)
	}

	_, err = validation.CustomerRef(f, 99)
	if !errors.Is(err, validation.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestProductRefs(t *testing.T) {
	laptop := models.Product{Name: "Laptop", Price: 999.99, Stock: 10}
	laptop.ID = 1
	mouse := models.Product{Name: "Mouse", Price: 25.50, Stock: 100}
	mouse.ID = 2
	f := &fakeFinder{products: []models.Product{laptop, mouse}}

	_, err := validation.ProductRefs(f, nil)
	if !errors.Is(err, validation.ErrNoProductsProvided) {
		t.Fatalf("expected ErrNoProductsProvided, got %v", err)
	}

	_, err = validation.ProductRefs(f, []uint{42, 43})
	if !errors.Is(err, validation.ErrProductsNotFound) {
		t.Fatalf("expected ErrProductsNotFound, got %v", err)
	}

	// Partial match resolves the subset; the caller decides what to do.
	got, err := validation.ProductRefs(f, []uint{1, 42})
	if err != nil {
		t.Fatalf("expected partial match to pass, got %v", err)
	}
	if len(got) != 1 || got[0].Name != "Laptop" {
		t.Errorf("expected just the laptop, got %v", got)
	}
}
