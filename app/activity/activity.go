// Package activity bridges domain events onto the WebSocket feed so
// dashboards see customers, orders and restocks as they happen.
package activity

import (
	"encoding/json"
	"time"

	"github.com/shashiranjanraj/charvi/pkg/event"
	"github.com/shashiranjanraj/charvi/pkg/logger"
	"github.com/shashiranjanraj/charvi/pkg/ws"
)

type item struct {
	Event   string      `json:"event"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload"`
}

// Wire subscribes the hub to every domain event the services fire.
func Wire(hub *ws.Hub) {
	for _, name := range []string{"customer.created", "order.created", "products.restocked"} {
		name := name
		event.Listen(name, func(payload interface{}) {
			data, err := json.Marshal(item{Event: name, At: time.Now(), Payload: payload})
			if err != nil {
				logger.Warn("activity: marshal failed", "event", name, "error", err)
				return
			}
			hub.Broadcast <- data
		})
	}
}
