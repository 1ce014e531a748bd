package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gamedeals"

//nolint:gochecknoglobals
var (
	// UpstreamRequests counts calls to the deals and metadata APIs.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outgoing API requests by upstream and outcome.",
		},
		[]string{"upstream", "outcome"},
	)

	// APIRequests counts requests served by the JSON API.
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Served API requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	// BotUpdates counts handled bot commands and callbacks.
	BotUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bot_updates_total",
			Help:      "Handled bot updates by command.",
		},
		[]string{"command"},
	)

	// AlertsSent counts deal alerts delivered by the notifier.
	AlertsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_sent_total",
			Help:      "Deal alerts sent to the alert chat.",
		},
	)

	CatalogDeals = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_deals",
			Help:      "Deals in the last loaded list.",
		},
	)

	MetadataLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metadata_lookups_total",
			Help:      "Metadata lookups by outcome (found, not_found, error, canceled).",
		},
		[]string{"outcome"},
	)
)
