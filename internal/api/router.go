// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/creatorpulse/creatorpulse/internal/config"
)

// Router builds the HTTP handler tree for the engine API.
type Router struct {
	cfg *config.ServerConfig
}

// NewRouter creates a router with the given server configuration.
func NewRouter(cfg *config.ServerConfig) *Router {
	return &Router{cfg: cfg}
}

// Handler assembles the full middleware stack and route tree.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger())
	r.Use(CORS(rt.cfg))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Health endpoints skip rate limiting so orchestration probes
		// never get throttled out.
		r.Route("/health", func(r chi.Router) {
			r.Get("/live", handleHealthLive)
			r.Get("/ready", handleHealthReady)
			r.Get("/", handleHealth)
		})

		r.Group(func(r chi.Router) {
			r.Use(RateLimit(rt.cfg))
			r.Use(Metrics())

			r.Route("/scores", func(r chi.Router) {
				r.Post("/composite", handleCompositeScore)
				r.Post("/cross-platform", handleCrossPlatformScore)
			})

			r.Route("/lifecycle", func(r chi.Router) {
				r.Post("/decay", handleDecay)
				r.Post("/lifespan", handleLifespan)
				r.Post("/adaptation", handleAdaptation)
				r.Post("/revitalization", handleRevitalization)
			})

			r.Route("/virality", func(r chi.Router) {
				r.Post("/k-factor", handleKFactor)
				r.Post("/loops", handleViralLoops)
				r.Post("/reach", handleViralReach)
				r.Post("/decay-curve", handleDecayCurve)
			})

			r.Route("/stability", func(r chi.Router) {
				r.Post("/volatility", handleVolatility)
				r.Post("/retention", handleRetention)
				r.Post("/churn-forecast", handleChurnForecast)
				r.Post("/ltv", handleLTV)
			})

			r.Route("/risk", func(r chi.Router) {
				r.Post("/volatility", handleRevenueVolatility)
				r.Post("/diversification", handleDiversification)
				r.Post("/assessment", handleAssessment)
				r.Post("/forecast", handleRiskForecast)
			})
		})
	})

	return r
}
