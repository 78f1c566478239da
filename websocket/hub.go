package websocket

import (
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"KidSafe/models"
)

// Hub maintains the set of connected dashboard clients grouped by parent ID
// and fans incoming alerts out to them.
type Hub struct {
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *envelope

	logger *zap.Logger
	mu     sync.Mutex
}

type envelope struct {
	ParentID string
	Data     []byte
}

// AlertEvent is the wire format pushed to dashboard clients.
type AlertEvent struct {
	Type      string       `json:"type"`
	Alert     models.Alert `json:"alert"`
	Timestamp time.Time    `json:"timestamp"`
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *envelope),
		logger:     logger,
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastAlert pushes an alert to every connection the parent has open.
// Marshal failures are logged and dropped; delivery is best effort.
func (h *Hub) BroadcastAlert(parentID string, alert models.Alert) {
	event := AlertEvent{Type: "alert", Alert: alert, Timestamp: time.Now()}
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("alert broadcast marshal failed", zap.String("alert_id", alert.ID), zap.Error(err))
		return
	}
	h.broadcast <- &envelope{ParentID: parentID, Data: data}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.ParentID]; !ok {
				h.clients[client.ParentID] = make(map[*Client]bool)
			}
			h.clients[client.ParentID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ParentID]; ok {
				if _, registered := h.clients[client.ParentID][client]; registered {
					delete(h.clients[client.ParentID], client)
					close(client.send)
					if len(h.clients[client.ParentID]) == 0 {
						delete(h.clients, client.ParentID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			if clients, ok := h.clients[message.ParentID]; ok {
				for client := range clients {
					select {
					case client.send <- message.Data:
					default:
						close(client.send)
						delete(clients, client)
						if len(clients) == 0 {
							delete(h.clients, message.ParentID)
						}
					}
				}
			}
			h.mu.Unlock()
		}
	}
}
