package schema

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/charvi/app/services"
	gql "github.com/shashiranjanraj/charvi/pkg/graphql"
)

// Resolver carries the services the schema resolves against.
type Resolver struct {
	Customers *services.CustomerService
	Products  *services.ProductService
	Orders    *services.OrderService
	Reports   *services.ReportService
}

// Build assembles the executable CRM schema.
func Build(r *Resolver) (graphql.Schema, error) {
	return gql.NewSchema(newQuery(r), newMutation(r))
}
