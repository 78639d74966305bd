// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"getnow/internal/models"
)

// LeadStore persists booking and contact requests. Leads are written
// exactly once per submission and never mutated here; status transitions
// belong to the admin tool.
type LeadStore struct {
	db *sql.DB
}

// NewLeadStore returns a new LeadStore.
func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

// CreateServiceLead inserts a booking request from a service detail page
// and returns the stored record. A uniqueness violation surfaces as
// ErrDuplicate.
func (s *LeadStore) CreateServiceLead(ctx context.Context, lead *models.ServiceLead) (*models.ServiceLead, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO service_leads (name, email, phone, service, preferred_datetime, message, status, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, phone, service, preferred_datetime, message, status, active, created_at, updated_at
	`, lead.Name, lead.Email, lead.Phone, lead.Service, lead.PreferredDatetime, lead.Message, lead.Status, lead.Active)

	var stored models.ServiceLead
	err := row.Scan(
		&stored.ID, &stored.Name, &stored.Email, &stored.Phone, &stored.Service,
		&stored.PreferredDatetime, &stored.Message, &stored.Status, &stored.Active,
		&stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create service lead: %w", translateErr(err))
	}
	return &stored, nil
}

// CreateCategoryLead inserts a contact request from a category landing page.
func (s *LeadStore) CreateCategoryLead(ctx context.Context, lead *models.CategoryLead) (*models.CategoryLead, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO category_service_leads (name, email, phone, address, category_slug, category_name, preferred_time, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, email, phone, address, category_slug, category_name, preferred_time, message, status, created_at, updated_at
	`, lead.Name, lead.Email, lead.Phone, lead.Address, lead.CategorySlug, lead.CategoryName,
		lead.PreferredTime, lead.Message, lead.Status)

	var stored models.CategoryLead
	err := row.Scan(
		&stored.ID, &stored.Name, &stored.Email, &stored.Phone, &stored.Address,
		&stored.CategorySlug, &stored.CategoryName, &stored.PreferredTime, &stored.Message,
		&stored.Status, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create category lead: %w", translateErr(err))
	}
	return &stored, nil
}

// SubscriberStore persists newsletter signups. The email column carries a
// unique constraint; repeat signups surface as ErrDuplicate so the user
// sees "already subscribed" instead of a generic failure.
type SubscriberStore struct {
	db *sql.DB
}

// NewSubscriberStore returns a new SubscriberStore.
func NewSubscriberStore(db *sql.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

// Create inserts a newsletter subscriber and returns the stored record.
func (s *SubscriberStore) Create(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO newsletter_subscribers (email)
		VALUES ($1)
		RETURNING id, email, created_at
	`, email)

	var sub models.NewsletterSubscriber
	if err := row.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
		return nil, fmt.Errorf("create subscriber: %w", translateErr(err))
	}
	return &sub, nil
}
