// Package schema defines the GraphQL surface of the CRM: the entity
// object types, the query fields (filterable, orderable listings plus
// report aggregates) and the mutation fields.
package schema

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/charvi/app/models"
)

var customerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Customer",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceCustomer(p).ID, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceCustomer(p).Name, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceCustomer(p).Email, nil
			},
		},
		"phone": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceCustomer(p).Phone, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceCustomer(p).CreatedAt, nil
			},
		},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceProduct(p).ID, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceProduct(p).Name, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceProduct(p).Price, nil
			},
		},
		"stock": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceProduct(p).Stock, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceProduct(p).CreatedAt, nil
			},
		},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceOrder(p).ID, nil
			},
		},
		"customer": &graphql.Field{
			Type: customerType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceOrder(p).Customer, nil
			},
		},
		"products": &graphql.Field{
			Type: graphql.NewList(productType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceOrder(p).Products, nil
			},
		},
		"totalAmount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceOrder(p).TotalAmount, nil
			},
		},
		"orderDate": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return sourceOrder(p).OrderDate, nil
			},
		},
	},
})

// Listings resolve to value slices; single-entity fields may hand either
// a value or a pointer to the child resolvers.

func sourceCustomer(p graphql.ResolveParams) models.Customer {
	switch v := p.Source.(type) {
	case models.Customer:
		return v
	case *models.Customer:
		return *v
	}
	return models.Customer{}
}

func sourceProduct(p graphql.ResolveParams) models.Product {
	switch v := p.Source.(type) {
	case models.Product:
		return v
	case *models.Product:
		return *v
	}
	return models.Product{}
}

func sourceOrder(p graphql.ResolveParams) models.Order {
	switch v := p.Source.(type) {
	case models.Order:
		return v
	case *models.Order:
		return *v
	}
	return models.Order{}
}
