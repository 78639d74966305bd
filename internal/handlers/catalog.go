// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"getnow/internal/cache"
	"getnow/internal/catalog"
	"getnow/internal/models"
	"getnow/internal/store"
)

// Catalog groups the read-only catalog endpoints. Listings check the
// Valkey response cache before hitting the database; the cache may be nil
// when Valkey is not configured, in which case every request goes to the DB.
type Catalog struct {
	categories *store.CategoryStore
	services   *store.ServiceStore
	respCache  *cache.ResponseCache
}

// NewCatalog creates a new Catalog handler group. respCache may be nil.
func NewCatalog(categories *store.CategoryStore, services *store.ServiceStore, respCache *cache.ResponseCache) *Catalog {
	return &Catalog{
		categories: categories,
		services:   services,
		respCache:  respCache,
	}
}

// cachedJSON serves a request from the response cache when possible,
// otherwise builds the payload, serves it, and stores the serialized body.
func (c *Catalog) cachedJSON(w http.ResponseWriter, r *http.Request, build func() (any, error)) {
	key := cache.RequestKey(r.URL.Path, r.URL.RawQuery)

	if c.respCache != nil {
		if body, ok := c.respCache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
			return
		}
	}

	payload, err := build()
	if err != nil {
		slog.Error("catalog query failed", "path", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("encode catalog response failed", "path", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if c.respCache != nil {
		c.respCache.Set(r.Context(), key, body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// ListCategories returns every category with its service count.
func (c *Catalog) ListCategories(w http.ResponseWriter, r *http.Request) {
	c.cachedJSON(w, r, func() (any, error) {
		items, err := c.categories.List(r.Context())
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Category{}
		}
		return map[string]any{"categories": items}, nil
	})
}

// GetCategory returns a single category by slug.
func (c *Catalog) GetCategory(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	category, err := c.categories.FindBySlug(r.Context(), slugParam)
	if err != nil {
		slog.Error("find category by slug failed", "slug", slugParam, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// ListCategoryServices returns the services belonging to one category.
func (c *Catalog) ListCategoryServices(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	category, err := c.categories.FindBySlug(r.Context(), slugParam)
	if err != nil {
		slog.Error("find category by slug failed", "slug", slugParam, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	c.cachedJSON(w, r, func() (any, error) {
		items, err := c.services.ListByCategorySlug(r.Context(), slugParam)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Service{}
		}
		return map[string]any{"category": category, "services": items}, nil
	})
}

// ListServices runs the catalog query pipeline: free-text search, category
// and price-bucket filters, and sorting, all taken from query parameters.
// With grouped=true the filtered result is additionally grouped by category.
func (c *Catalog) ListServices(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r)

	c.cachedJSON(w, r, func() (any, error) {
		all, err := c.services.ListAll(r.Context())
		if err != nil {
			return nil, err
		}

		matched := catalog.Run(all, q)
		payload := map[string]any{
			"services": matched,
			"count":    len(matched),
			"total":    len(all),
			"filtered": q.IsFiltered(),
		}
		if r.URL.Query().Get("grouped") == "true" {
			payload["groups"] = catalog.GroupByCategory(matched)
		}
		return payload, nil
	})
}

// GetService returns a single service by slug.
func (c *Catalog) GetService(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	service, err := c.services.FindBySlug(r.Context(), slugParam)
	if err != nil {
		slog.Error("find service by slug failed", "slug", slugParam, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if service == nil {
		respondError(w, http.StatusNotFound, "Service not found")
		return
	}
	respondJSON(w, http.StatusOK, service)
}

// queryFromRequest maps query parameters onto a catalog query. Unknown
// sort keys and directions fall back to the defaults rather than erroring,
// matching how the filter controls behave.
func queryFromRequest(r *http.Request) catalog.Query {
	params := r.URL.Query()
	q := catalog.DefaultQuery()

	q.Search = params.Get("search")
	if v := params.Get("category"); v != "" {
		q.Category = v
	}
	if v := params.Get("price"); v != "" {
		q.Price = v
	}
	switch catalog.SortKey(params.Get("sort")) {
	case catalog.SortPrice:
		q.SortBy = catalog.SortPrice
	case catalog.SortPopular:
		q.SortBy = catalog.SortPopular
	case catalog.SortName:
		q.SortBy = catalog.SortName
	}
	if catalog.SortDir(params.Get("order")) == catalog.Descending {
		q.Order = catalog.Descending
	}
	return q
}
