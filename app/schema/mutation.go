package schema

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/services"
)

// ─── Input objects ────────────────────────────────────────────────────────────

var customerInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var orderInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"productIds": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int))),
		},
		"orderDate": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

// ─── Payload objects ──────────────────────────────────────────────────────────

type createCustomerPayload struct {
	Customer models.Customer
	Message  string
}

var createCustomerPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateCustomerPayload",
	Fields: graphql.Fields{
		"customer": &graphql.Field{
			Type: customerType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(createCustomerPayload).Customer, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(createCustomerPayload).Message, nil
			},
		},
	},
})

var bulkCreateCustomersPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "BulkCreateCustomersPayload",
	Fields: graphql.Fields{
		"customers": &graphql.Field{
			Type: graphql.NewList(customerType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(services.BulkCreateResult).Customers, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(services.BulkCreateResult).Errors, nil
			},
		},
	},
})

var createProductPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateProductPayload",
	Fields: graphql.Fields{
		"product": &graphql.Field{
			Type: productType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Product), nil
			},
		},
	},
})

var createOrderPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateOrderPayload",
	Fields: graphql.Fields{
		"order": &graphql.Field{
			Type: orderType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Order), nil
			},
		},
	},
})

var restockPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UpdateLowStockProductsPayload",
	Fields: graphql.Fields{
		"success": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(services.RestockResult).Success, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(services.RestockResult).Message, nil
			},
		},
		"updatedProducts": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(services.RestockResult).UpdatedProducts, nil
			},
		},
	},
})

// ─── Mutation root ────────────────────────────────────────────────────────────

func newMutation(r *Resolver) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: createCustomerPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(customerInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := customerInputFromArgs(p.Args["input"])
					customer, message, err := r.Customers.Create(input)
					if err != nil {
						return nil, err
					}
					return createCustomerPayload{Customer: customer, Message: message}, nil
				},
			},

			"bulkCreateCustomers": &graphql.Field{
				Type: bulkCreateCustomersPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInput))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["input"].([]interface{})
					inputs := make([]services.CreateCustomerInput, 0, len(raw))
					for _, item := range raw {
						inputs = append(inputs, customerInputFromArgs(item))
					}
					return r.Customers.BulkCreate(inputs)
				},
			},

			"createProduct": &graphql.Field{
				Type: createProductPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					args, _ := p.Args["input"].(map[string]interface{})
					input := services.CreateProductInput{
						Name:  strArg(args, "name"),
						Stock: intPtrArg(args, "stock"),
					}
					if price := floatPtrArg(args, "price"); price != nil {
						input.Price = *price
					}
					return r.Products.Create(input)
				},
			},

			"createOrder": &graphql.Field{
				Type: createOrderPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					args, _ := p.Args["input"].(map[string]interface{})
					input := services.CreateOrderInput{
						ProductIDs: uintSliceArg(args, "productIds"),
						OrderDate:  timePtrArg(args, "orderDate"),
					}
					if id := uintPtrArg(args, "customerId"); id != nil {
						input.CustomerID = *id
					}
					return r.Orders.Create(input)
				},
			},

			"updateLowStockProducts": &graphql.Field{
				Type: restockPayloadType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Products.UpdateLowStock()
				},
			},
		},
	})
}

func customerInputFromArgs(raw interface{}) services.CreateCustomerInput {
	args, _ := raw.(map[string]interface{})
	return services.CreateCustomerInput{
		Name:  strArg(args, "name"),
		Email: strArg(args, "email"),
		Phone: strArg(args, "phone"),
	}
}
