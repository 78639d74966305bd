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

// ServiceStore reads purchasable services from the database, always
// joined with their parent category so the catalog engine can filter on
// the category title and slug.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore returns a new ServiceStore.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceSelect = `
	SELECT sv.id, sv.category_id, sv.title, sv.slug, sv.description,
	       sv.price, sv.duration, sv.image_url, sv.popular,
	       sv.created_at, sv.updated_at,
	       c.title AS category_title, c.slug AS category_slug
	FROM services sv
	JOIN categories c ON c.id = sv.category_id`

// scanService scans a joined service row.
func scanService(scanner interface{ Scan(...any) error }) (*models.Service, error) {
	var sv models.Service
	err := scanner.Scan(
		&sv.ID, &sv.CategoryID, &sv.Title, &sv.Slug, &sv.Description,
		&sv.Price, &sv.Duration, &sv.ImageURL, &sv.Popular,
		&sv.CreatedAt, &sv.UpdatedAt,
		&sv.CategoryTitle, &sv.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

// ListAll returns every service with its category annotations, ordered by
// category display order. This is the catalog engine's source list.
func (s *ServiceStore) ListAll(ctx context.Context) ([]models.Service, error) {
	rows, err := s.db.QueryContext(ctx, serviceSelect+`
	ORDER BY c.sort_order, c.title, sv.title`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	return collectServices(rows)
}

// ListByCategorySlug returns the services belonging to one category.
func (s *ServiceStore) ListByCategorySlug(ctx context.Context, categorySlug string) ([]models.Service, error) {
	rows, err := s.db.QueryContext(ctx, serviceSelect+`
	WHERE c.slug = $1
	ORDER BY sv.title`, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("list services by category: %w", err)
	}
	defer rows.Close()
	return collectServices(rows)
}

// FindBySlug retrieves a single service by its slug. Returns nil if not found.
func (s *ServiceStore) FindBySlug(ctx context.Context, slug string) (*models.Service, error) {
	row := s.db.QueryRowContext(ctx, serviceSelect+`
	WHERE sv.slug = $1`, slug)
	sv, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by slug: %w", err)
	}
	return sv, nil
}

// collectServices drains a joined service result set.
func collectServices(rows *sql.Rows) ([]models.Service, error) {
	var items []models.Service
	for rows.Next() {
		sv, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, *sv)
	}
	return items, rows.Err()
}
