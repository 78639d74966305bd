// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"getnow/internal/site"
)

// Site serves the fixed marketing content: membership plans, the
// technician and testimonial samples, and location landing page data.
type Site struct {
	sampler *site.Sampler
}

// NewSite creates a new Site handler group.
func NewSite(sampler *site.Sampler) *Site {
	return &Site{sampler: sampler}
}

// Plans returns the membership tiers with their computed yearly savings.
// The billing parameter selects which period's price is surfaced as the
// display price; anything but "yearly" means monthly.
func (s *Site) Plans(w http.ResponseWriter, r *http.Request) {
	type planView struct {
		site.Plan
		Price          float64 `json:"price"`
		SavingsPercent int     `json:"savings_percent"`
	}

	billing := site.BillingMonthly
	if site.Billing(r.URL.Query().Get("billing")) == site.BillingYearly {
		billing = site.BillingYearly
	}

	plans := site.Plans()
	views := make([]planView, 0, len(plans))
	for _, p := range plans {
		views = append(views, planView{
			Plan:           p,
			Price:          p.PriceFor(billing),
			SavingsPercent: p.SavingsPercent(),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"billing": billing,
		"plans":   views,
	})
}

// Technicians returns a random sample of featured technicians.
func (s *Site) Technicians(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"technicians": s.sampler.Technicians(countParam(r, 3)),
	})
}

// Testimonials returns a random sample of customer testimonials.
func (s *Site) Testimonials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"testimonials": s.sampler.Testimonials(countParam(r, 3)),
	})
}

// States returns every serviced state with its cities.
func (s *Site) States(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"states": site.States()})
}

// State returns a single serviced state by slug.
func (s *Site) State(w http.ResponseWriter, r *http.Request) {
	st := site.FindState(chi.URLParam(r, "state"))
	if st == nil {
		respondError(w, http.StatusNotFound, "State not found")
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// City returns a serviced city within a state, both addressed by slug.
func (s *Site) City(w http.ResponseWriter, r *http.Request) {
	st, city := site.FindCity(chi.URLParam(r, "state"), chi.URLParam(r, "city"))
	if st == nil {
		respondError(w, http.StatusNotFound, "State not found")
		return
	}
	if city == nil {
		respondError(w, http.StatusNotFound, "City not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"state": st, "city": city})
}

// countParam reads the "count" query parameter, falling back to def for
// missing or non-positive values.
func countParam(r *http.Request, def int) int {
	v := r.URL.Query().Get("count")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
