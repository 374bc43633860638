// Package event is the in-process bus the services use to announce
// created customers, created orders and restocks. Listeners run
// synchronously on the caller's goroutine, so mutation responses
// already reflect whatever the listeners did.
package event

import "sync"

// Handler receives the payload passed to Fire.
type Handler func(payload interface{})

var (
	mu        sync.RWMutex
	listeners = map[string][]Handler{}
)

// Listen subscribes handler to the named event.
func Listen(name string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	listeners[name] = append(listeners[name], handler)
}

// Fire calls every listener of the named event in registration order.
func Fire(name string, payload interface{}) {
	mu.RLock()
	hs := append([]Handler(nil), listeners[name]...)
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}
