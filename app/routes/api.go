package routes

import (
	"net/http"

	"github.com/shashiranjanraj/charvi/app/controllers"
	"github.com/shashiranjanraj/charvi/config"
	"github.com/shashiranjanraj/charvi/pkg/middleware"
	"github.com/shashiranjanraj/charvi/pkg/router"
	"github.com/shashiranjanraj/charvi/pkg/ws"
)

func RegisterAPI(r *router.Router, gql *controllers.GraphQLController, health *controllers.HealthController, hub *ws.Hub) {
	var gqlMiddleware []router.Middleware
	if config.AuthEnabled() {
		gqlMiddleware = append(gqlMiddleware, middleware.AuthMiddleware)
	}

	r.Get("/graphql", "graphql.query", gql.Handle, gqlMiddleware...)
	r.Post("/graphql", "graphql.execute", gql.Handle, gqlMiddleware...)

	r.Get("/health", "health.check", health.Check)

	r.Get("/ws/activity", "activity.feed", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, hub)
	})
}
