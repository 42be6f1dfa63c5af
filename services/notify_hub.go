package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"
)

// BadgeUpdate is the payload pushed to connected dashboard browsers when the
// notification badge count changes
type BadgeUpdate struct {
	Total int `json:"total"`
}

// wsClient wraps a WebSocket connection with a mutex for thread-safe writes
type wsClient struct {
	conn *ws.Conn
	mu   sync.Mutex
}

// Hub maintains connected WebSocket clients and broadcasts badge updates
type Hub struct {
	mu      sync.RWMutex
	clients map[*wsClient]struct{}
}

var hubInstance *Hub

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*wsClient]struct{})}
}

// GetHub returns the hub instance
func GetHub() *Hub {
	return hubInstance
}

// SetHub sets the hub instance (primarily for testing)
func SetHub(h *Hub) {
	hubInstance = h
}

// Register adds a connection to the hub and returns a handle used to
// unregister it on disconnect
func (h *Hub) Register(conn *ws.Conn) *wsClient {
	c := &wsClient{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

// Unregister removes a connection from the hub and closes it
func (h *Hub) Unregister(c *wsClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send writes a badge update to one client, e.g. the initial badge on
// connect. The client is dropped if the write fails.
func (h *Hub) Send(c *wsClient, update BadgeUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Hub: failed to encode badge update: %v", err)
		return
	}

	c.mu.Lock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	writeErr := c.conn.WriteMessage(ws.TextMessage, data)
	c.mu.Unlock()

	if writeErr != nil {
		h.Unregister(c)
	}
}

// Broadcast sends a badge update to all connected clients. Clients whose
// write fails are dropped.
func (h *Hub) Broadcast(update BadgeUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Hub: failed to encode badge update: %v", err)
		return
	}

	h.mu.RLock()
	clients := make([]*wsClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		writeErr := c.conn.WriteMessage(ws.TextMessage, data)
		c.mu.Unlock()

		if writeErr != nil {
			h.Unregister(c)
		}
	}
}
