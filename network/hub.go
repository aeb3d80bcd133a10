package network

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Hub tracks connected spectators and fans frames out to them
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	// Telemetry, nil-safe
	statClients *atomic.Int64
	sent        atomic.Uint64
}

// NewHub creates an empty hub; statClients may be nil
func NewHub(statClients *atomic.Int64) *Hub {
	return &Hub{
		clients:     make(map[string]*Client),
		statClients: statClients,
	}
}

// Add registers a client, false when max is reached
func (h *Hub) Add(c *Client, max int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if max > 0 && len(h.clients) >= max {
		return false
	}
	h.clients[c.ID] = c
	h.updateStat()
	return true
}

// Remove unregisters and closes a client
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.ID]; ok {
		delete(h.clients, c.ID)
		h.updateStat()
	}
	h.mu.Unlock()
	c.Close()
}

// Broadcast queues data on every client, slow clients drop the frame
// Returns the number of clients that accepted it
func (h *Hub) Broadcast(data []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	accepted := 0
	for _, c := range h.clients {
		if c.Send(data) {
			accepted++
		}
	}
	h.sent.Add(uint64(accepted))
	return accepted
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// IDs returns connected client ids in sorted order
func (h *Hub) IDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sent returns the total frames queued across clients
func (h *Hub) Sent() uint64 {
	return h.sent.Load()
}

// CloseAll disconnects every client
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]*Client)
	h.updateStat()
	h.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}
}

// updateStat mirrors the client count, caller holds mu
func (h *Hub) updateStat() {
	if h.statClients != nil {
		h.statClients.Store(int64(len(h.clients)))
	}
}
