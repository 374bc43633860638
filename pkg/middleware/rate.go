// Package middleware holds the HTTP middleware the kernel stacks in
// front of the GraphQL endpoint.
package middleware

import (
	"net/http"
	"sync"
	"time"
)

// window counts requests from one client IP within a fixed interval.
type window struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (w *window) take(limit int, span time.Duration) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if now.After(w.resetAt) {
		w.count = 0
		w.resetAt = now.Add(span)
	}
	w.count++
	return w.count <= limit
}

type limiter struct {
	mu      sync.Mutex
	clients map[string]*window
	span    time.Duration
}

func (l *limiter) windowFor(ip string) *window {
	l.mu.Lock()
	defer l.mu.Unlock()
	w, ok := l.clients[ip]
	if !ok {
		w = &window{resetAt: time.Now().Add(l.span)}
		l.clients[ip] = w
	}
	return w
}

// sweep drops expired windows so idle IPs do not accumulate forever.
func (l *limiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, w := range l.clients {
			w.mu.Lock()
			stale := now.After(w.resetAt)
			w.mu.Unlock()
			if stale {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit caps each client IP to limit requests per span, honoring
// X-Forwarded-For when a proxy sits in front.
func RateLimit(limit int, span time.Duration) func(http.Handler) http.Handler {
	l := &limiter{clients: map[string]*window{}, span: span}
	go l.sweep()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}
			if !l.windowFor(ip).take(limit, span) {
				http.Error(w, `{"status":429,"message":"Too Many Requests"}`, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
