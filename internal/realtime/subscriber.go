package realtime

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// NATSSubscriber bridges the pub/sub transport into the websocket hub: every
// message on content.> is forwarded to the hub under the matching channel
// name. Running the bridge over the broker (rather than feeding the hub
// in-process) lets multiple service instances fan out each other's events.
type NATSSubscriber struct {
	conn   *nats.Conn
	hub    *Hub
	sub    *nats.Subscription
	logger *slog.Logger
}

// NewNATSSubscriber creates the bridge using an established connection.
func NewNATSSubscriber(conn *nats.Conn, hub *Hub, logger *slog.Logger) *NATSSubscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &NATSSubscriber{conn: conn, hub: hub, logger: logger}
}

// Start subscribes to the content subject tree.
func (s *NATSSubscriber) Start() error {
	sub, err := s.conn.Subscribe("content.>", func(msg *nats.Msg) {
		s.hub.Broadcast(ChannelForSubject(msg.Subject), msg.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to content events: %w", err)
	}
	s.sub = sub
	s.logger.Info("realtime bridge subscribed", "subject", "content.>")
	return nil
}

// Stop unsubscribes the bridge.
func (s *NATSSubscriber) Stop() {
	if s.sub == nil {
		return
	}
	if err := s.sub.Unsubscribe(); err != nil {
		s.logger.Warn("failed to unsubscribe realtime bridge", "error", err)
	}
}
