package schema

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/charvi/app/repositories"
)

// orderByArg is shared by all three listings: a column name with an
// optional leading "-" for descending order.
var orderByArg = &graphql.ArgumentConfig{Type: graphql.String}

func newQuery(r *Resolver) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},

			"allCustomers": &graphql.Field{
				Type: graphql.NewList(customerType),
				Args: graphql.FieldConfigArgument{
					"orderBy":       orderByArg,
					"nameContains":  &graphql.ArgumentConfig{Type: graphql.String},
					"emailContains": &graphql.ArgumentConfig{Type: graphql.String},
					"phoneStartsWith": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"createdAtGte": &graphql.ArgumentConfig{Type: graphql.DateTime},
					"createdAtLte": &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := repositories.CustomerFilter{
						NameContains:  strArg(p.Args, "nameContains"),
						EmailContains: strArg(p.Args, "emailContains"),
						PhonePrefix:   strArg(p.Args, "phoneStartsWith"),
						CreatedGte:    timePtrArg(p.Args, "createdAtGte"),
						CreatedLte:    timePtrArg(p.Args, "createdAtLte"),
					}
					return r.Customers.List(filter, strArg(p.Args, "orderBy"))
				},
			},

			"allProducts": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"orderBy":      orderByArg,
					"nameContains": &graphql.ArgumentConfig{Type: graphql.String},
					"priceGte":     &graphql.ArgumentConfig{Type: graphql.Float},
					"priceLte":     &graphql.ArgumentConfig{Type: graphql.Float},
					"stockGte":     &graphql.ArgumentConfig{Type: graphql.Int},
					"stockLte":     &graphql.ArgumentConfig{Type: graphql.Int},
					"lowStock":     &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := repositories.ProductFilter{
						NameContains: strArg(p.Args, "nameContains"),
						PriceGte:     floatPtrArg(p.Args, "priceGte"),
						PriceLte:     floatPtrArg(p.Args, "priceLte"),
						StockGte:     intPtrArg(p.Args, "stockGte"),
						StockLte:     intPtrArg(p.Args, "stockLte"),
						LowStock:     boolArg(p.Args, "lowStock"),
					}
					return r.Products.List(filter, strArg(p.Args, "orderBy"))
				},
			},

			"allOrders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"orderBy":             orderByArg,
					"customerId":          &graphql.ArgumentConfig{Type: graphql.Int},
					"customerName":        &graphql.ArgumentConfig{Type: graphql.String},
					"productId":           &graphql.ArgumentConfig{Type: graphql.Int},
					"productNameContains": &graphql.ArgumentConfig{Type: graphql.String},
					"totalAmountGte":      &graphql.ArgumentConfig{Type: graphql.Float},
					"totalAmountLte":      &graphql.ArgumentConfig{Type: graphql.Float},
					"orderDateGte":        &graphql.ArgumentConfig{Type: graphql.DateTime},
					"orderDateLte":        &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := repositories.OrderFilter{
						CustomerID:          uintPtrArg(p.Args, "customerId"),
						CustomerName:        strArg(p.Args, "customerName"),
						ProductID:           uintPtrArg(p.Args, "productId"),
						ProductNameContains: strArg(p.Args, "productNameContains"),
						TotalGte:            floatPtrArg(p.Args, "totalAmountGte"),
						TotalLte:            floatPtrArg(p.Args, "totalAmountLte"),
						OrderDateGte:        timePtrArg(p.Args, "orderDateGte"),
						OrderDateLte:        timePtrArg(p.Args, "orderDateLte"),
					}
					return r.Orders.List(filter, strArg(p.Args, "orderBy"))
				},
			},

			"customersCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					report, err := r.Reports.Cached()
					if err != nil {
						return nil, err
					}
					return int(report.Customers), nil
				},
			},
			"ordersCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					report, err := r.Reports.Cached()
					if err != nil {
						return nil, err
					}
					return int(report.Orders), nil
				},
			},
			"totalRevenue": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					report, err := r.Reports.Cached()
					if err != nil {
						return nil, err
					}
					return report.TotalRevenue, nil
				},
			},
		},
	})
}
