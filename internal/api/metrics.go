package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loto_tickets_generated_total",
		Help: "Tickets generated, by game variant and mode.",
	}, []string{"game", "mode"})

	uniformFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loto_uniform_fallbacks_total",
		Help: "Weighted draws that degraded to the uniform path.",
	})
)
