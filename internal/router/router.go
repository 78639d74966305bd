// Package router sets up all HTTP routes and middleware chains for the
// public API. Read endpoints are open; the write endpoints sit behind a
// per-IP rate limiter so a misbehaving client cannot flood the lead tables.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"getnow/internal/handlers"
	"getnow/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned limiter's Stop must be called
// on shutdown.
func New(catalog *handlers.Catalog, leads *handlers.Leads, site *handlers.Site) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// 10 submissions per IP per minute across the write endpoints.
	limiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/api", func(r chi.Router) {
		// Catalog reads.
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", catalog.ListCategories)
			r.Get("/{slug}", catalog.GetCategory)
			r.Get("/{slug}/services", catalog.ListCategoryServices)
		})
		r.Route("/services", func(r chi.Router) {
			r.Get("/", catalog.ListServices)
			r.Get("/{slug}", catalog.GetService)
		})

		// Lead-capture writes, rate limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/leads/service", leads.ServiceLead)
			r.Post("/leads/category", leads.CategoryLead)
			r.Post("/newsletter", leads.Newsletter)
		})

		// Fixed marketing content.
		r.Get("/plans", site.Plans)
		r.Get("/technicians", site.Technicians)
		r.Get("/testimonials", site.Testimonials)
		r.Route("/locations", func(r chi.Router) {
			r.Get("/states", site.States)
			r.Get("/states/{state}", site.State)
			r.Get("/states/{state}/cities/{city}", site.City)
		})
	})

	return r, limiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
