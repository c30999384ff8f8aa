// Package api exposes a built match index over a small REST surface:
// name lookup, health, stats and Prometheus metrics.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/corpdata/registryd/pkg/status"
)

// Routes builds the service router for a server.
func Routes(server *Server) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if server.metrics != nil {
			r.Get("/health", server.metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))
			r.Get("/match/{name}", server.metrics.InstrumentHandler("GET", "/api/v1/match/{name}", server.handleMatch))
			r.Get("/stats", server.metrics.InstrumentHandler("GET", "/api/v1/stats", server.handleStats))
		} else {
			r.Get("/health", server.handleHealth)
			r.Get("/match/{name}", server.handleMatch)
			r.Get("/stats", server.handleStats)
		}
	})

	return r
}

// StartServer starts the HTTP lookup service and blocks.
func StartServer(index Matcher, report *status.Report, config ServerConfig) error {
	metrics := NewMetrics()
	metrics.SetIndexSize(index.Size())

	server := NewServer(index, report, config, metrics)
	r := Routes(server)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting registryd lookup service on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}
