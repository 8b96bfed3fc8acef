// Package metrics exposes the service's Prometheus collectors.
// Collectors are registered once at init via promauto and shared process-wide.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InteractionsTotal counts committed interaction mutations by kind and
	// content type. Unqualified views and no-op metadata touches are excluded.
	InteractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selah_interactions_total",
		Help: "Committed interaction mutations by kind and content type.",
	}, []string{"kind", "content_type"})

	// ViewsUnqualifiedTotal counts view events rejected by the qualification
	// threshold for their content kind.
	ViewsUnqualifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selah_views_unqualified_total",
		Help: "View events below the qualification threshold.",
	}, []string{"content_type"})

	// RealtimePublishTotal counts fire-and-forget realtime publishes by
	// outcome. Errors here never surface to callers, so this is the only
	// place they are visible besides logs.
	RealtimePublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selah_realtime_publish_total",
		Help: "Realtime event publishes by outcome.",
	}, []string{"outcome"})

	// WebsocketClients tracks currently connected realtime clients.
	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "selah_websocket_clients",
		Help: "Currently connected websocket clients.",
	})
)
