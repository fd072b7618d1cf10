package websocket

import (
	"encoding/json"
	"sync"

	"github.com/novashop/novashop-backend/pkg/logger"
)

// Event is one storefront push message, e.g. the insight for the currently
// open product resolving, or the cart badge changing.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Event types pushed to the storefront.
const (
	EventInsightReady = "insight_ready"
	EventCartUpdated  = "cart_updated"
)

// Hub fans storefront events out to the WebSocket connections of each session.
// One session may hold several connections (multiple tabs).
type Hub struct {
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client
	publish    chan *sessionMessage

	mu sync.RWMutex
}

type sessionMessage struct {
	SessionID string
	Data      []byte
}

// NewHub creates the hub. Run must be started in its own goroutine.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string][]*Client),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		publish:    make(chan *sessionMessage, 1024),
	}
}

// Run processes registrations and event delivery.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			logger.Debug("WebSocket client registered", map[string]interface{}{
				"session_id":  client.SessionID,
				"connections": len(h.clients[client.SessionID]),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clientList, ok := h.clients[client.SessionID]; ok {
				newList := make([]*Client, 0, len(clientList))
				for _, c := range clientList {
					if c != client {
						newList = append(newList, c)
					}
				}
				if len(newList) == 0 {
					delete(h.clients, client.SessionID)
				} else {
					h.clients[client.SessionID] = newList
				}
				close(client.Send)
			}
			h.mu.Unlock()
			logger.Debug("WebSocket client unregistered", map[string]interface{}{
				"session_id": client.SessionID,
			})

		case message := <-h.publish:
			h.mu.RLock()
			for _, client := range h.clients[message.SessionID] {
				select {
				case client.Send <- message.Data:
				default:
					// Send buffer full: drop the connection, not the loop.
					go h.Unregister(client)
					logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
						"session_id": message.SessionID,
					})
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Publish sends an event to every connection of the given session. Events are
// best-effort: when the hub is saturated the message is dropped, since all
// state can be re-read over the HTTP API.
func (h *Hub) Publish(sessionID string, eventType string, payload interface{}) {
	data, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		logger.Error("Failed to marshal event", err, map[string]interface{}{
			"event_type": eventType,
		})
		return
	}

	select {
	case h.publish <- &sessionMessage{SessionID: sessionID, Data: data}:
	default:
		logger.Warn("Publish channel full, event dropped", map[string]interface{}{
			"session_id": sessionID,
			"event_type": eventType,
		})
	}
}
