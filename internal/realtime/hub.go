package realtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"Selah/internal/metrics"
)

// ChannelGlobal is the channel name clients use to receive every interaction
// event regardless of content.
const ChannelGlobal = "content:global"

// envelope is a raw event payload addressed to one channel.
type envelope struct {
	channel string
	data    []byte
}

// Hub maintains the set of connected websocket clients and routes interaction
// events to the clients subscribed to the matching channel. Channel names use
// the form content:{type}:{id}, mirroring the pub/sub subjects with colons.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
	done       chan struct{}
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes client lifecycle and broadcast events until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			metrics.WebsocketClients.Inc()
			h.logger.Info("websocket client connected", "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.WebsocketClients.Dec()
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("websocket client disconnected", "total", total)

		case env := <-h.broadcast:
			h.deliver(env)
		}
	}
}

// add attaches a client to the hub. Returns false when the hub has shut down;
// the caller must drop the connection instead of waiting on a dead loop.
func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// remove detaches a client. A no-op after shutdown: closeAll has already
// released every client.
func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast routes a payload to clients subscribed to the channel. Called by
// the transport subscriber; safe for concurrent use.
func (h *Hub) Broadcast(channel string, data []byte) {
	select {
	case h.broadcast <- envelope{channel: channel, data: data}:
	default:
		// Dropping under backpressure is acceptable: the counters in the
		// payload are authoritative on the next read, not the event stream.
		h.logger.Warn("hub broadcast buffer full, dropping event", "channel", channel)
	}
}

func (h *Hub) deliver(env envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !client.wants(env.channel) {
			continue
		}
		select {
		case client.send <- env.data:
		default:
			// Slow client: skip rather than stall every other subscriber.
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}

// ChannelForSubject converts a pub/sub subject (content.media.<id>) to the
// client-facing channel name (content:media:<id>).
func ChannelForSubject(subject string) string {
	return strings.ReplaceAll(subject, ".", ":")
}
