// Package metrics defines and registers all custom Prometheus metrics for the
// timetable portal. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// AgendaFetchesTotal counts weekly agenda fetches against the store.
// Label:
//   - result: "ok" or "error"
var AgendaFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "agenda_fetches_total",
		Help:      "Total number of weekly agenda fetches, by result.",
	},
	[]string{"result"},
)

// SyncEventsTotal counts change-feed events received by live sync controllers.
// Label:
//   - table: the watched table the event arrived on
var SyncEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_events_total",
		Help:      "Total number of change-feed events that triggered a resync.",
	},
	[]string{"table"},
)

// SyncStreamsActive tracks the number of live agenda streams currently open.
var SyncStreamsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sync_streams_active",
		Help:      "Number of live agenda streams currently connected.",
	},
)

// ChangeEventsPublishedTotal counts change events published after mutations.
// Labels:
//   - table: mutated table
//   - kind: insert, update, or delete
var ChangeEventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_events_published_total",
		Help:      "Total number of change events published to the feed.",
	},
	[]string{"table", "kind"},
)

// AgendaRebuildDuration measures the fetch-and-transform latency for one
// weekly agenda rebuild.
var AgendaRebuildDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "agenda_rebuild_duration_seconds",
		Help:      "Duration of a full agenda fetch and rebuild.",
		Buckets:   prometheus.DefBuckets,
	},
)
