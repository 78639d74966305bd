// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"getnow/internal/leads"
	"getnow/internal/models"
	"getnow/internal/slug"
	"getnow/internal/store"
)

// Leads groups the write endpoints: booking requests, category requests,
// and newsletter signups. Each request runs through a fresh form instance
// so the validation and submission pipeline matches the client forms
// exactly: validate, write once, resolve.
type Leads struct {
	leadStore   *store.LeadStore
	subscribers *store.SubscriberStore
	validator   *leads.Validator
	now         func() time.Time
}

// NewLeads creates a new Leads handler group. A nil clock defaults to
// time.Now.
func NewLeads(leadStore *store.LeadStore, subscribers *store.SubscriberStore, now func() time.Time) *Leads {
	if now == nil {
		now = time.Now
	}
	return &Leads{
		leadStore:   leadStore,
		subscribers: subscribers,
		validator:   leads.NewValidator(now),
		now:         now,
	}
}

// serviceLeadRequest is the booking form payload from a service detail page.
type serviceLeadRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Service           string `json:"service"`
	PreferredDateTime string `json:"preferredDateTime"`
	Message           string `json:"message"`
}

// ServiceLead accepts a booking request for a named service.
func (l *Leads) ServiceLead(w http.ResponseWriter, r *http.Request) {
	var req serviceLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	form := leads.NewServiceForm(req.Service, l.now)
	form.Set("name", req.Name)
	form.Set("email", req.Email)
	form.Set("phone", req.Phone)
	form.Set("preferredDateTime", req.PreferredDateTime)
	form.Set("message", req.Message)

	var stored *models.ServiceLead
	outcome, err := form.Submit(r.Context(), func(ctx context.Context, fields map[string]string) error {
		when, err := leads.ParsePreferred(fields["preferredDateTime"])
		if err != nil {
			return err
		}
		lead := &models.ServiceLead{
			Name:              strings.TrimSpace(fields["name"]),
			Email:             strings.TrimSpace(fields["email"]),
			Phone:             strings.TrimSpace(fields["phone"]),
			Service:           strings.TrimSpace(fields["service"]),
			PreferredDatetime: when,
			Message:           optionalMessage(fields["message"]),
			Status:            models.LeadStatusPending,
			Active:            true,
		}
		stored, err = l.leadStore.CreateServiceLead(ctx, lead)
		return mapStoreErr(err)
	})

	switch outcome {
	case leads.OutcomeSuccess:
		respondJSON(w, http.StatusCreated, map[string]any{
			"message": "Request submitted successfully! We'll contact you shortly to confirm your appointment.",
			"lead":    stored,
		})
	case leads.OutcomeInvalid:
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Please fix the errors in the form",
			"fields": form.Errors(),
		})
	case leads.OutcomeDuplicate:
		respondError(w, http.StatusConflict, "A request with this information already exists")
	default:
		slog.Error("service lead submission failed", "error", err)
		if errors.Is(err, store.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid data format. Please check your input")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to submit request. Please try again later or contact support.")
	}
}

// categoryLeadRequest is the request form payload from a category landing page.
type categoryLeadRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	CategorySlug  string `json:"categorySlug"`
	CategoryName  string `json:"categoryName"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

// CategoryLead accepts a service request scoped to a whole category. The
// category name is derived from the slug when the client omits it, so
// landing pages work for categories that only exist as routes.
func (l *Leads) CategoryLead(w http.ResponseWriter, r *http.Request) {
	var req categoryLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	categoryName := strings.TrimSpace(req.CategoryName)
	if categoryName == "" {
		categoryName = slug.Humanize(req.CategorySlug)
	}

	form := leads.NewCategoryForm(req.CategorySlug, categoryName, l.now)
	form.Set("name", req.Name)
	form.Set("email", req.Email)
	form.Set("phone", req.Phone)
	form.Set("address", req.Address)
	form.Set("preferredTime", req.PreferredTime)
	form.Set("message", req.Message)

	var stored *models.CategoryLead
	outcome, err := form.Submit(r.Context(), func(ctx context.Context, fields map[string]string) error {
		when, err := leads.ParsePreferred(fields["preferredTime"])
		if err != nil {
			return err
		}
		lead := &models.CategoryLead{
			Name:          strings.TrimSpace(fields["name"]),
			Email:         strings.TrimSpace(fields["email"]),
			Phone:         strings.TrimSpace(fields["phone"]),
			Address:       strings.TrimSpace(fields["address"]),
			CategorySlug:  fields["categorySlug"],
			CategoryName:  fields["categoryName"],
			PreferredTime: when,
			Message:       optionalMessage(fields["message"]),
			Status:        models.LeadStatusPending,
		}
		stored, err = l.leadStore.CreateCategoryLead(ctx, lead)
		return mapStoreErr(err)
	})

	switch outcome {
	case leads.OutcomeSuccess:
		respondJSON(w, http.StatusCreated, map[string]any{
			"message": "Request submitted successfully! We'll contact you soon.",
			"lead":    stored,
		})
	case leads.OutcomeInvalid:
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Please fix the errors in the form",
			"fields": form.Errors(),
		})
	case leads.OutcomeDuplicate:
		respondError(w, http.StatusConflict, "A request with this information already exists")
	default:
		slog.Error("category lead submission failed", "error", err)
		if errors.Is(err, store.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid data format. Please check your input")
			return
		}
		respondError(w, http.StatusInternalServerError, "Unable to submit request. Please try again")
	}
}

// newsletterRequest is the footer signup payload.
type newsletterRequest struct {
	Email string `json:"email"`
}

// Newsletter subscribes an email address to updates.
func (l *Leads) Newsletter(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		respondError(w, http.StatusBadRequest, "Please enter your email address.")
		return
	}
	if errs := l.validator.ValidateNewsletter(leads.NewsletterInput{Email: req.Email}); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, errs["email"])
		return
	}

	sub, err := l.subscribers.Create(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "This email is already subscribed!")
			return
		}
		slog.Error("newsletter signup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to subscribe. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":    "Subscribed successfully! Welcome to our newsletter.",
		"subscriber": sub,
	})
}

// optionalMessage returns nil for a blank message so the column stores
// NULL instead of an empty string.
func optionalMessage(msg string) *string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil
	}
	return &msg
}

// mapStoreErr converts the store's uniqueness sentinel into the form
// pipeline's duplicate signal so Submit resolves to OutcomeDuplicate.
func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrDuplicate) {
		return leads.ErrDuplicate
	}
	return err
}
