package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/charvi/pkg/auth"
	"github.com/shashiranjanraj/charvi/pkg/response"
)

// AuthMiddleware requires a valid bearer token issued to an API client.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		token := strings.Replace(r.Header.Get("Authorization"), "Bearer ", "", 1)

		if token == "" {
			response.Unauthorized(w)
			return
		}

		if _, err := auth.ValidateToken(token); err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
