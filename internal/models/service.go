// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a purchasable tech-support offering. Services belong to
// exactly one category and are created and edited by an external admin
// tool; this application only reads them.
type Service struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	ImageURL    string    `json:"image_url"`
	Popular     bool      `json:"popular"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Virtual fields populated when services are loaded with their
	// parent category, as the catalog engine filters on both.
	CategoryTitle string `json:"category_title,omitempty"`
	CategorySlug  string `json:"category_slug,omitempty"`
}
