// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GamesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "games_created_total",
			Help: "Cumulative number of game records created.",
		})

	GamesUpdatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "games_updated_total",
			Help: "Cumulative number of game records updated.",
		})

	GamesDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "games_deleted_total",
			Help: "Cumulative number of game records deleted.",
		})

	GameLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_lookups_total",
			Help: "Cumulative number of single-game reads, by outcome.",
		},
		[]string{"outcome"}, // "hit" or "miss"
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency, by route pattern and status class.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		GamesCreatedTotal,
		GamesUpdatedTotal,
		GamesDeletedTotal,
		GameLookupsTotal,
		RequestDuration,
	)
}
