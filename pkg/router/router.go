// Package router is a small facade over chi that records every named
// route so `crmd route:list` can print the API surface.
package router

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Middleware wraps an http.Handler, chi-style.
type Middleware func(http.Handler) http.Handler

// RouteInfo describes one mounted route.
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

type Router struct {
	mux chi.Router

	mu    sync.RWMutex
	infos []RouteInfo
}

func New() *Router {
	return &Router{mux: chi.NewRouter()}
}

// Handler exposes the underlying mux for http.Server.
func (r *Router) Handler() http.Handler { return r.mux }

// Use appends middleware to the global chain. Call before mounting
// routes; chi rejects late additions.
func (r *Router) Use(middlewares ...Middleware) {
	for _, mw := range middlewares {
		r.mux.Use(mw)
	}
}

func (r *Router) Get(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mount(http.MethodGet, path, name, handler, middlewares)
}

func (r *Router) Post(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mount(http.MethodPost, path, name, handler, middlewares)
}

// HandleFunc mounts handler at path for every HTTP method.
func (r *Router) HandleFunc(path string, handler http.HandlerFunc) {
	r.mux.Handle(clean(path), handler)
}

// NotFound sets the handler for requests matching no route.
func (r *Router) NotFound(handler http.HandlerFunc) {
	r.mux.NotFound(handler)
}

// Routes snapshots every named route mounted so far.
func (r *Router) Routes() []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]RouteInfo(nil), r.infos...)
}

func (r *Router) mount(method, path, name string, handler http.HandlerFunc, middlewares []Middleware) {
	p := clean(path)

	var h http.Handler = handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	r.mux.Method(method, p, h)

	if name == "" {
		return
	}
	r.mu.Lock()
	r.infos = append(r.infos, RouteInfo{Method: method, Path: p, Name: name})
	r.mu.Unlock()
}

func clean(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed
}
