package socket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Inquiry messages
	MessageInquiryCreated MessageType = "inquiry_created"
	MessageInquiryUpdated MessageType = "inquiry_updated"

	// Portfolio messages
	MessagePortfolioEvicted MessageType = "portfolio_evicted"

	// System messages
	MessagePing MessageType = "ping"
	MessagePong MessageType = "pong"
)

// Message represents a WebSocket message
type Message struct {
	Type      MessageType            `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Hub maintains the set of connected admin clients and fans events out to
// all of them. The site has a single feed, so there is no room bookkeeping.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	log.Println("[Hub] WebSocket hub started")

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastToAll(message)

		case <-pingTicker.C:
			h.pingClients()
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	log.Printf("[Hub] ✅ Client registered: user=%s, id=%s, total_clients=%d",
		client.UserID, client.ID, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
		log.Printf("[Hub] ❌ Client disconnected: user=%s, id=%s, total_clients=%d",
			client.UserID, client.ID, len(h.clients))
	}
}

func (h *Hub) broadcastToAll(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- message:
		default:
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}

func (h *Hub) pingClients() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := Message{
		Type:      MessagePing,
		Timestamp: time.Now(),
	}
	data, _ := json.Marshal(msg)

	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}

// Broadcast sends a typed message to every connected client
func (h *Hub) Broadcast(msgType MessageType, payload map[string]interface{}) {
	msg := Message{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Hub] Error marshaling message: %v", err)
		return
	}
	h.broadcast <- data
}

// GetConnectedClientsCount returns total connected clients
func (h *Hub) GetConnectedClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
