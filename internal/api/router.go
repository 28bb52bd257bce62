package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/takarabako/loto/internal/config"
	"github.com/takarabako/loto/internal/entropy"
	"github.com/takarabako/loto/internal/events"
	"github.com/takarabako/loto/internal/ticket"
)

func NewRouter(g *ticket.Generator, ev events.Client, prov entropy.Provider, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	tickets := NewTicketsHandler(g, ev, prov, cfg.Game.Default, cfg.Game.MaxBatchSize, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/tickets", tickets.Create)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
