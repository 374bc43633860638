// Package kernel assembles the CRM's HTTP surface: the global middleware
// stack, the Prometheus endpoint and the API routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/charvi/app/activity"
	"github.com/shashiranjanraj/charvi/app/controllers"
	"github.com/shashiranjanraj/charvi/app/routes"
	"github.com/shashiranjanraj/charvi/app/schema"
	"github.com/shashiranjanraj/charvi/pkg/metrics"
	"github.com/shashiranjanraj/charvi/pkg/middleware"
	"github.com/shashiranjanraj/charvi/pkg/reqid"
	"github.com/shashiranjanraj/charvi/pkg/response"
	"github.com/shashiranjanraj/charvi/pkg/router"
	"github.com/shashiranjanraj/charvi/pkg/ws"
)

// HTTPKernel holds the built handler plus the pieces the server needs to
// run alongside it.
type HTTPKernel struct {
	router *router.Router
	Hub    *ws.Hub
}

// NewHTTPKernel builds the middleware stack and mounts the API on top of
// the given resolver.
func NewHTTPKernel(resolver *schema.Resolver) (*HTTPKernel, error) {
	gqlSchema, err := schema.Build(resolver)
	if err != nil {
		return nil, err
	}

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus /metrics endpoint — no auth, no rate limit.
	r.HandleFunc("/metrics", metrics.Handler())

	hub := ws.NewHub()
	activity.Wire(hub)

	routes.RegisterAPI(r,
		controllers.NewGraphQLController(gqlSchema),
		controllers.NewHealthController(),
		hub,
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w)
	})

	return &HTTPKernel{router: r, Hub: hub}, nil
}

// Handler returns the root http.Handler.
func (k *HTTPKernel) Handler() http.Handler {
	return k.router.Handler()
}

// Routes lists the mounted routes for the route:list command.
func (k *HTTPKernel) Routes() []router.RouteInfo {
	return k.router.Routes()
}
