package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/charvi/pkg/validate"
)

type customerInput struct {
	Name  string  `json:"name"  validate:"required,max=255"`
	Email string  `json:"email" validate:"required,email"`
	Phone string  `json:"phone" validate:"nullable,max=20"`
	Price float64 `json:"price" validate:"nullable,gt=0"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(customerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "", // nullable — allowed to be empty
		Price: 999.99,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(customerInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gt=0"`
		Stock int     `json:"stock" validate:"nullable,gte=0"`
	}

	errs := validate.Struct(in{Price: -1})
	if _, ok := errs["price"]; !ok {
		t.Error("expected price to fail gt=0")
	}

	errs = validate.Struct(in{Price: 25.50, Stock: 100})
	if validate.HasErrors(errs) {
		t.Errorf("expected bounds to pass, got: %v", errs)
	}
}

func TestMaxOnStrings(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,max=5"`
	}
	errs := validate.Struct(in{Name: "toolongname"})
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to exceed max")
	}
}

func TestInRuleKeepsCommaParams(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending,shipped,delivered,max=20"`
	}
	errs := validate.Struct(in{Status: "shipped"})
	if validate.HasErrors(errs) {
		t.Errorf("expected shipped to be allowed, got: %v", errs)
	}
	errs = validate.Struct(in{Status: "lost"})
	if _, ok := errs["status"]; !ok {
		t.Error("expected lost to be rejected")
	}
}

func TestRegexRule(t *testing.T) {
	type in struct {
		Phone string `json:"phone" validate:"nullable,regex=^\\+?[\\d\\-]+$"`
	}
	errs := validate.Struct(in{Phone: "+1234567890"})
	if validate.HasErrors(errs) {
		t.Errorf("expected phone to match, got: %v", errs)
	}
	errs = validate.Struct(in{Phone: "letters"})
	if _, ok := errs["phone"]; !ok {
		t.Error("expected phone regex to fail")
	}
}
