package schema_test

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/schema"
	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/pkg/orm"
)

func newTestSchema(t *testing.T) (graphql.Schema, *orm.Query) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))

	q := orm.New(db)
	s, err := schema.Build(&schema.Resolver{
		Customers: services.NewCustomerService(q),
		Products:  services.NewProductService(q),
		Orders:    services.NewOrderService(q),
		Reports:   services.NewReportService(q),
	})
	require.NoError(t, err)
	return s, q
}

func exec(t *testing.T, s graphql.Schema, query string) map[string]interface{} {
	t.Helper()

	result := graphql.Do(graphql.Params{Schema: s, RequestString: query})
	require.Empty(t, result.Errors, "query %s", query)
	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestHello(t *testing.T) {
	s, _ := newTestSchema(t)

	data := exec(t, s, `{ hello }`)
	require.Equal(t, "Hello, GraphQL!", data["hello"])
}

func TestCreateCustomerMutation(t *testing.T) {
	s, _ := newTestSchema(t)

	data := exec(t, s, `mutation {
		createCustomer(input: {name: "Alice", email: "alice@example.com", phone: "+1234567890"}) {
			customer { id name email phone }
			message
		}
	}`)

	payload := data["createCustomer"].(map[string]interface{})
	require.Equal(t, "Customer created successfully", payload["message"])

	customer := payload["customer"].(map[string]interface{})
	require.Equal(t, "Alice", customer["name"])
	require.Equal(t, "alice@example.com", customer["email"])
	require.NotZero(t, customer["id"])
}

func TestCreateCustomerMutationDuplicateEmail(t *testing.T) {
	s, _ := newTestSchema(t)

	exec(t, s, `mutation {
		createCustomer(input: {name: "Alice", email: "alice@example.com"}) { message }
	}`)

	result := graphql.Do(graphql.Params{Schema: s, RequestString: `mutation {
		createCustomer(input: {name: "Alicia", email: "alice@example.com"}) { message }
	}`})
	require.NotEmpty(t, result.Errors)
	require.Contains(t, result.Errors[0].Message, "Email already exists: alice@example.com")
}

func TestBulkCreateCustomersMutation(t *testing.T) {
	s, _ := newTestSchema(t)

	exec(t, s, `mutation {
		createCustomer(input: {name: "Bob", email: "bob@example.com"}) { message }
	}`)

	data := exec(t, s, `mutation {
		bulkCreateCustomers(input: [
			{name: "Alice", email: "alice@example.com"},
			{name: "Bobby", email: "bob@example.com"},
			{name: "Carol", email: "carol@example.com"}
		]) {
			customers { name }
			errors
		}
	}`)

	payload := data["bulkCreateCustomers"].(map[string]interface{})
	require.Len(t, payload["customers"], 2)
	errs := payload["errors"].([]interface{})
	require.Len(t, errs, 1)
	require.Equal(t, "Email already exists: bob@example.com", errs[0])
}

func TestCreateOrderMutation(t *testing.T) {
	s, q := newTestSchema(t)

	customers := services.NewCustomerService(q)
	products := services.NewProductService(q)
	_, _, err := customers.Create(services.CreateCustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	ten, hundred := 10, 100
	_, err = products.Create(services.CreateProductInput{Name: "Laptop", Price: 999.99, Stock: &ten})
	require.NoError(t, err)
	_, err = products.Create(services.CreateProductInput{Name: "Mouse", Price: 25.50, Stock: &hundred})
	require.NoError(t, err)

	data := exec(t, s, `mutation {
		createOrder(input: {customerId: 1, productIds: [1, 2]}) {
			order {
				id
				totalAmount
				customer { name }
				products { name }
			}
		}
	}`)

	order := data["createOrder"].(map[string]interface{})["order"].(map[string]interface{})
	require.Equal(t, 1025.49, order["totalAmount"])
	require.Equal(t, "Alice", order["customer"].(map[string]interface{})["name"])
	require.Len(t, order["products"], 2)
}

func TestUpdateLowStockProductsMutation(t *testing.T) {
	s, q := newTestSchema(t)

	products := services.NewProductService(q)
	three := 3
	_, err := products.Create(services.CreateProductInput{Name: "Laptop", Price: 999.99, Stock: &three})
	require.NoError(t, err)

	data := exec(t, s, `mutation {
		updateLowStockProducts {
			success
			message
			updatedProducts
		}
	}`)

	payload := data["updateLowStockProducts"].(map[string]interface{})
	require.Equal(t, true, payload["success"])
	require.Equal(t, "Low-stock products successfully updated!", payload["message"])
	require.Equal(t, []interface{}{"Laptop (Stock: 13)"}, payload["updatedProducts"])
}

func TestAllProductsFilterAndOrder(t *testing.T) {
	s, q := newTestSchema(t)

	products := services.NewProductService(q)
	for _, p := range []struct {
		name  string
		price float64
		stock int
	}{
		{"Laptop", 999.99, 3},
		{"Mouse", 25.50, 100},
		{"Keyboard", 49.99, 9},
	} {
		stock := p.stock
		_, err := products.Create(services.CreateProductInput{Name: p.name, Price: p.price, Stock: &stock})
		require.NoError(t, err)
	}

	data := exec(t, s, `{ allProducts(lowStock: true, orderBy: "-price") { name stock } }`)
	list := data["allProducts"].([]interface{})
	require.Len(t, list, 2)
	require.Equal(t, "Laptop", list[0].(map[string]interface{})["name"])
	require.Equal(t, "Keyboard", list[1].(map[string]interface{})["name"])
}

func TestReportFields(t *testing.T) {
	s, q := newTestSchema(t)

	customers := services.NewCustomerService(q)
	_, _, err := customers.Create(services.CreateCustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	data := exec(t, s, `{ customersCount ordersCount totalRevenue }`)
	require.EqualValues(t, 1, data["customersCount"])
	require.EqualValues(t, 0, data["ordersCount"])
	require.EqualValues(t, 0, data["totalRevenue"])
}
