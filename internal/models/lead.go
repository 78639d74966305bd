// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks how far a lead has progressed. Only "pending" is ever
// set by this application; the rest are managed by the admin tool.
type LeadStatus string

const (
	LeadStatusPending   LeadStatus = "pending"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusCompleted LeadStatus = "completed"
	LeadStatusCancelled LeadStatus = "cancelled"
)

// ServiceLead is a booking request submitted from a service detail page.
// Created once per form submission, never mutated or deleted here.
type ServiceLead struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Service           string     `json:"service"`
	PreferredDatetime time.Time  `json:"preferred_datetime"`
	Message           *string    `json:"message,omitempty"`
	Status            LeadStatus `json:"status"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CategoryLead is a contact request submitted from a category landing page.
// Unlike ServiceLead it carries a street address and references the whole
// category rather than a single service.
type CategoryLead struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	CategorySlug  string     `json:"category_slug"`
	CategoryName  string     `json:"category_name"`
	PreferredTime time.Time  `json:"preferred_time"`
	Message       *string    `json:"message,omitempty"`
	Status        LeadStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewsletterSubscriber is an email address opted into updates. The email
// column carries a unique constraint; duplicate signups are surfaced to the
// user as "already subscribed" rather than a generic failure.
type NewsletterSubscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
