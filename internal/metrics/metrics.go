// Package metrics exposes the service's prometheus collectors. Counters are
// package-level so every layer can record without plumbing a registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Logins counts login attempts by outcome: success, rejected, degraded.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entrytrack_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	// EntriesRecorded counts entry rows actually written to the store.
	EntriesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "entrytrack_entries_recorded_total",
		Help: "Entries persisted to the store.",
	})

	// DemoFallbacks counts responses served from the canned dataset.
	DemoFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entrytrack_demo_fallbacks_total",
		Help: "Responses served in demo mode, by operation.",
	}, []string{"operation"})
)
