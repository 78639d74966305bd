// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the query engine behind the services listing:
// free-text search, category and price-bucket filters, sorting, and
// grouping by category. Everything here is a pure function of its inputs;
// the same service list and query always produce the same result.
package catalog

import (
	"math"
	"sort"
	"strings"

	"getnow/internal/models"
)

// SortKey selects which service attribute drives the sort order.
type SortKey string

const (
	SortName    SortKey = "name"
	SortPrice   SortKey = "price"
	SortPopular SortKey = "popular"
)

// SortDir is the sort direction.
type SortDir string

const (
	Ascending  SortDir = "asc"
	Descending SortDir = "desc"
)

// All is the sentinel value that disables the category or price filter.
const All = "all"

// priceBucket is an inclusive price range selectable in the UI.
type priceBucket struct {
	min, max float64
}

// priceBuckets maps the fixed bucket identifiers to their ranges. Both
// ends are inclusive, mirroring the storefront's original behaviour: a
// price sitting exactly on a boundary (50, 100, 200) matches the buckets
// on both sides of it. Kept as-is rather than "fixed" so that filter
// results stay identical to what customers have always seen.
var priceBuckets = map[string]priceBucket{
	"under-50": {0, 50},
	"50-100":   {50, 100},
	"100-200":  {100, 200},
	"over-200": {200, math.Inf(1)},
}

// Query holds the four independent user-controlled catalog inputs.
// The zero value is not meaningful; use DefaultQuery.
type Query struct {
	Search   string
	Category string // category slug, or All
	Price    string // bucket identifier, or All
	SortBy   SortKey
	Order    SortDir
}

// DefaultQuery returns the catalog's initial state: no search, no filters,
// sorted by name ascending. The "clear all filters" control resets to this.
func DefaultQuery() Query {
	return Query{
		Search:   "",
		Category: All,
		Price:    All,
		SortBy:   SortName,
		Order:    Ascending,
	}
}

// IsFiltered reports whether any filter deviates from the default, which
// drives the "active filters" row in the UI.
func (q Query) IsFiltered() bool {
	return strings.TrimSpace(q.Search) != "" || q.Category != All || q.Price != All
}

// Group is one category's slice of the filtered result, keyed by the
// category display title.
type Group struct {
	Category string           `json:"category"`
	Services []models.Service `json:"services"`
}

// Run applies the query's filters and sort to the given service list and
// returns the matching services. The input slice is never modified and the
// result is always a subset of it. Filters compose conjunctively.
func Run(services []models.Service, q Query) []models.Service {
	filtered := make([]models.Service, 0, len(services))
	for _, s := range services {
		if matchesSearch(s, q.Search) && matchesCategory(s, q.Category) && matchesPrice(s, q.Price) {
			filtered = append(filtered, s)
		}
	}
	sortServices(filtered, q.SortBy, q.Order)
	return filtered
}

// matchesSearch does a case-insensitive substring match against the
// service title, description, and parent category title. Blank search
// text matches everything.
func matchesSearch(s models.Service, term string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.Title), needle) ||
		strings.Contains(strings.ToLower(s.Description), needle) ||
		strings.Contains(strings.ToLower(s.CategoryTitle), needle)
}

// matchesCategory compares the service's derived category slug against the
// selected one. The All sentinel bypasses the filter.
func matchesCategory(s models.Service, category string) bool {
	if category == All {
		return true
	}
	return s.CategorySlug == category
}

// matchesPrice tests bucket membership. The All sentinel and unknown
// bucket identifiers bypass the filter, matching the storefront's
// fall-through for unrecognised values.
func matchesPrice(s models.Service, bucket string) bool {
	if bucket == All {
		return true
	}
	b, ok := priceBuckets[bucket]
	if !ok {
		return true
	}
	return s.Price >= b.min && s.Price <= b.max
}

// sortServices orders the slice in place. The sort is stable so that
// services comparing equal keep their relative order across re-filters
// instead of flickering. Unknown sort keys leave the order untouched.
func sortServices(services []models.Service, key SortKey, dir SortDir) {
	var less func(a, b models.Service) bool
	switch key {
	case SortName:
		less = func(a, b models.Service) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortPrice:
		less = func(a, b models.Service) bool { return a.Price < b.Price }
	case SortPopular:
		less = func(a, b models.Service) bool { return popularRank(a) < popularRank(b) }
	default:
		return
	}

	sort.SliceStable(services, func(i, j int) bool {
		if dir == Descending {
			return less(services[j], services[i])
		}
		return less(services[i], services[j])
	})
}

// popularRank sorts popular services as 1 and the rest as 0.
func popularRank(s models.Service) int {
	if s.Popular {
		return 1
	}
	return 0
}

// GroupByCategory groups an already filtered and sorted service list by
// category title, preserving the order in which categories are first
// encountered. Grouping is a derived view; it never reorders services
// within a category.
func GroupByCategory(services []models.Service) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, s := range services {
		i, ok := index[s.CategoryTitle]
		if !ok {
			i = len(groups)
			index[s.CategoryTitle] = i
			groups = append(groups, Group{Category: s.CategoryTitle})
		}
		groups[i].Services = append(groups[i].Services, s)
	}
	return groups
}
