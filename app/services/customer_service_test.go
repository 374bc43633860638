package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/charvi/app/repositories"
	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/app/validation"
)

func TestCreateCustomer(t *testing.T) {
	svc := services.NewCustomerService(newTestQuery(t))

	c, msg, err := svc.Create(services.CreateCustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "+1234567890",
	})
	require.NoError(t, err)
	require.Equal(t, "Customer created successfully", msg)
	require.NotZero(t, c.ID)
	require.Equal(t, "Alice", c.Name)
}

func TestCreateCustomerWithoutPhone(t *testing.T) {
	svc := services.NewCustomerService(newTestQuery(t))

	_, _, err := svc.Create(services.CreateCustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	svc := services.NewCustomerService(newTestQuery(t))

	_, _, err := svc.Create(services.CreateCustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, _, err = svc.Create(services.CreateCustomerInput{Name: "Alicia", Email: "alice@example.com"})
	require.Error(t, err)
	require.True(t, errors.Is(err, validation.ErrDuplicateEmail))
	require.Equal(t, "Email already exists: alice@example.com", err.Error())
}

func TestCreateCustomerInvalidPhone(t *testing.T) {
	svc := services.NewCustomerService(newTestQuery(t))

	_, _, err := svc.Create(services.CreateCustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "not-a-phone",
	})
	require.True(t, errors.Is(err, validation.ErrInvalidPhoneFormat))

	// The failed create leaves nothing behind.
	list, err := svc.List(repositories.CustomerFilter{}, "")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestBulkCreateCustomersPartialFailure(t *testing.T) {
	svc := services.NewCustomerService(newTestQuery(t))

	_, _, err := svc.Create(services.CreateCustomerInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	result, err := svc.BulkCreate([]services.CreateCustomerInput{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bobby", Email: "bob@example.com"}, // duplicate
		{Name: "Carol", Email: "carol@example.com"},
	})
	require.NoError(t, err)

	require.Len(t, result.Customers, 2)
	require.Equal(t, "Alice", result.Customers[0].Name)
	require.Equal(t, "Carol", result.Customers[1].Name)

	require.Len(t, result.Errors, 1)
	require.Equal(t, "Email already exists: bob@example.com", result.Errors[0])
}

func TestBulkCreateCustomersAllValid(t *testing.T) {
	svc := services.NewCustomerService(newTestQuery(t))

	result, err := svc.BulkCreate([]services.CreateCustomerInput{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
	})
	require.NoError(t, err)
	require.Len(t, result.Customers, 2)
	require.Empty(t, result.Errors)
}

func TestBulkCreateCustomersEmptyBatch(t *testing.T) {
	svc := services.NewCustomerService(newTestQuery(t))

	result, err := svc.BulkCreate(nil)
	require.NoError(t, err)
	require.NotNil(t, result.Customers)
	require.NotNil(t, result.Errors)
	require.Empty(t, result.Customers)
	require.Empty(t, result.Errors)
}
