package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"Selah/internal/core/interactions"
)

// NATSPublisher implements interactions.Notifier on top of a NATS connection.
// Every event goes to its per-content subject and to the global firehose
// subject; the websocket hub (and any other consumer) subscribes on the other
// side.
type NATSPublisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// NewNATSPublisher connects to NATS with retry-on-failure semantics. A broker
// that is down at startup does not fail the service; realtime delivery is
// best-effort by design and the connection keeps retrying in the background.
func NewNATSPublisher(url string, logger *slog.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	return &NATSPublisher{conn: conn, logger: logger}, nil
}

// Publish sends the event to the per-content subject and the global subject.
func (p *NATSPublisher) Publish(_ context.Context, ev interactions.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if err := p.conn.Publish(ev.Subject(), data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", ev.Subject(), err)
	}
	if err := p.conn.Publish(interactions.SubjectGlobal, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", interactions.SubjectGlobal, err)
	}
	return nil
}

// Conn exposes the underlying connection so the subscriber bridge can share it.
func (p *NATSPublisher) Conn() *nats.Conn {
	return p.conn
}

// Close drains the connection, flushing buffered publishes.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("nats drain failed", "error", err)
	}
}
