package hxassets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels stay low cardinality: never an asset identifier.
var (
	// RequestsAugmentedTotal counts requests that received the registry headers.
	RequestsAugmentedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hxassets_requests_augmented_total",
		Help: "Total number of outgoing fragment requests augmented with registry headers.",
	})

	// RegistrationsAppliedTotal counts identifiers added to a registry from
	// server announcements, by kind (style or dependency).
	RegistrationsAppliedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hxassets_registrations_applied_total",
		Help: "Total number of identifiers registered from server announcements, by kind.",
	}, []string{"kind"})

	// TriggerDecodeErrorsTotal counts HX-Trigger announcements a client could
	// not apply.
	TriggerDecodeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hxassets_trigger_decode_errors_total",
		Help: "Total number of asset announcements in HX-Trigger that could not be applied.",
	})

	// HeaderDecodeErrorsTotal counts malformed registry headers seen by servers.
	HeaderDecodeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hxassets_header_decode_errors_total",
		Help: "Total number of registry headers that could not be decoded, by header.",
	}, []string{"header"})
)
