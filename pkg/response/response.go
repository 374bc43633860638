// Package response writes the JSON envelope used by the non-GraphQL
// endpoints (health, auth and 404s). GraphQL results bypass it; the
// graphql handler marshals its own shape.
package response

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success replies 200 with data under the "data" key.
func Success(w http.ResponseWriter, data interface{}) {
	send(w, envelope{Status: http.StatusOK, Data: data})
}

// Error replies with the given status and a message.
func Error(w http.ResponseWriter, status int, message string) {
	send(w, envelope{Status: status, Message: message})
}

// Unauthorized replies 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// NotFound replies 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}

func send(w http.ResponseWriter, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
