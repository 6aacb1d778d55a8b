package services

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WSClient struct {
	VendorID uuid.UUID
	Conn     *websocket.Conn
}

// OrderHub fans order events out to every open dashboard connection a
// vendor has.
type OrderHub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*WSClient]struct{}
}

func NewOrderHub() *OrderHub {
	return &OrderHub{clients: make(map[uuid.UUID]map[*WSClient]struct{})}
}

func (h *OrderHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.VendorID] == nil {
		h.clients[c.VendorID] = make(map[*WSClient]struct{})
	}
	h.clients[c.VendorID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *OrderHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.VendorID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.VendorID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *OrderHub) Broadcast(vendorID uuid.UUID, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[vendorID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// Hub is the process-wide instance wired up in main.
var Hub = NewOrderHub()
