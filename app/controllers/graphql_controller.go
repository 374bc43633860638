package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/charvi/pkg/logger"
	"github.com/shashiranjanraj/charvi/pkg/response"
)

// graphqlRequest is the standard GraphQL-over-HTTP request body.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// GraphQLController serves the CRM schema at a single endpoint.
type GraphQLController struct {
	schema graphql.Schema
}

func NewGraphQLController(schema graphql.Schema) *GraphQLController {
	return &GraphQLController{schema: schema}
}

// Handle executes a GraphQL request. POST carries the standard JSON
// body; GET with ?query= is supported for probes (the heartbeat job and
// curl-style checks). Execution errors are reported inside the GraphQL
// result envelope with HTTP 200, per convention.
func (c *GraphQLController) Handle(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest

	switch r.Method {
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid GraphQL request body")
			return
		}
	default:
		response.Error(w, http.StatusMethodNotAllowed, "use GET or POST")
		return
	}

	if req.Query == "" {
		response.Error(w, http.StatusBadRequest, "missing query")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	if len(result.Errors) > 0 {
		logger.WithCtx(r.Context()).Warn("graphql: request finished with errors",
			"errors", len(result.Errors), "first", result.Errors[0].Message)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result) //nolint:errcheck
}
