package events

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// TicketEvent is broadcast to connected dashboard clients whenever a ticket
// moves through its lifecycle.
type TicketEvent struct {
	TicketID uint   `json:"ticket_id"`
	Action   string `json:"action"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// Hub fans ticket events out to websocket subscribers. A slow client is
// dropped rather than blocking the broadcast.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[conn] {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

func (h *Hub) Broadcast(event TicketEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("websocket write failed, dropping client: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount is exposed for the admin dashboard and tests.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
