package gateway

import (
	"log/slog"
	"sync"

	"github.com/praja-pulse/campaign-backend/internal/livestream"
)

// Hub fans published events out to every connected subscriber. Delivery is
// fire-and-forget: a subscriber whose send buffer is full misses the message
// rather than stalling a session loop.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*wsClient
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[string]*wsClient),
		logger:  logger.With("component", "hub"),
	}
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c.id] = c
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("subscriber connected", "client_id", c.id, "subscribers", count)
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
	}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("subscriber disconnected", "client_id", c.id, "subscribers", count)
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcast(msg *ServerMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("subscriber send buffer full, dropping message", "client_id", c.id)
		}
	}
}

// PublishTranscript implements livestream.Publisher.
func (h *Hub) PublishTranscript(evt livestream.TranscriptEvent) {
	h.broadcast(transcriptMessage(evt))
}

// PublishError implements livestream.Publisher.
func (h *Hub) PublishError(channelID, message string) {
	h.broadcast(errorMessage(channelID, message))
}

func (h *Hub) Close() error {
	h.mu.Lock()
	clients := make([]*wsClient, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]*wsClient)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
	return nil
}
