package ws

import (
	"sync"

	"github.com/gofiber/websocket/v2"

	"casino-platform/internal/logger"
)

// Frame is the envelope pushed to clients.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks open connections per account. Delivery is best-effort: a
// failed write drops the connection and nothing is retried.
type Hub struct {
	clients map[*websocket.Conn]string
	mu      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// NotifyAccount pushes a frame to every connection of one account.
func (h *Hub) NotifyAccount(accountID, event string, payload any) {
	h.send(event, payload, func(uid string) bool { return uid == accountID })
}

// Broadcast pushes a frame to every connected client.
func (h *Hub) Broadcast(event string, payload any) {
	h.send(event, payload, func(string) bool { return true })
}

func (h *Hub) send(event string, payload any, match func(uid string) bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	frame := Frame{Event: event, Data: payload}
	for c, uid := range h.clients {
		if !match(uid) {
			continue
		}
		if err := c.WriteJSON(frame); err != nil {
			logger.Log.Debug("ws write failed, dropping client")
			delete(h.clients, c)
			c.Close()
		}
	}
}

// Handler registers a connection under the uid it identifies itself with
// and blocks until the peer goes away.
func (h *Hub) Handler(c *websocket.Conn) {
	uid := c.Query("uid")

	h.mu.Lock()
	h.clients[c] = uid
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
