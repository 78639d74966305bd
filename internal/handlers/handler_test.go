// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides the shared fixture for handler unit tests.
// Stores run against a sqlmock driver so no PostgreSQL is needed, and the
// response cache is nil so every request exercises the full pipeline.
package handlers

import (
	"database/sql"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"getnow/internal/site"
	"getnow/internal/store"
)

// testNow is the fixed clock for lead form tests. Local zone because the
// preferred date/time rule parses zone-less values in local time.
var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

var (
	testTime       = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testCategoryID = uuid.New()
	testLeadID     = uuid.New()
)

// newMockDB creates a sqlmock connection with regexp query matching and
// registers cleanup for it.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "failed to create sqlmock")
	t.Cleanup(func() { db.Close() })

	return db, mock
}

// newTestRouter wires all handler groups onto a chi router the way the
// real router does, backed by the given mock database.
func newTestRouter(db *sql.DB) http.Handler {
	cat := NewCatalog(store.NewCategoryStore(db), store.NewServiceStore(db), nil)
	ld := NewLeads(store.NewLeadStore(db), store.NewSubscriberStore(db), func() time.Time { return testNow })
	st := NewSite(site.NewSampler(rand.NewSource(1)))

	r := chi.NewRouter()
	r.Get("/api/categories", cat.ListCategories)
	r.Get("/api/categories/{slug}", cat.GetCategory)
	r.Get("/api/categories/{slug}/services", cat.ListCategoryServices)
	r.Get("/api/services", cat.ListServices)
	r.Get("/api/services/{slug}", cat.GetService)
	r.Post("/api/leads/service", ld.ServiceLead)
	r.Post("/api/leads/category", ld.CategoryLead)
	r.Post("/api/newsletter", ld.Newsletter)
	r.Get("/api/plans", st.Plans)
	r.Get("/api/technicians", st.Technicians)
	r.Get("/api/testimonials", st.Testimonials)
	r.Get("/api/locations/states", st.States)
	r.Get("/api/locations/states/{state}", st.State)
	r.Get("/api/locations/states/{state}/cities/{city}", st.City)
	return r
}

// doRequest runs one request through the router and returns the recorder.
func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes a recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "response body: %s", rec.Body.String())
	return out
}

// serviceRows builds the joined service column set.
func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "category_id", "title", "slug", "description",
		"price", "duration", "image_url", "popular",
		"created_at", "updated_at", "category_title", "category_slug",
	})
}

// addService appends one joined service row.
func addService(rows *sqlmock.Rows, title, slug string, price float64, popular bool, categoryTitle, categorySlug string) *sqlmock.Rows {
	return rows.AddRow(
		uuid.New(), testCategoryID, title, slug, "desc",
		price, "2 hours", "", popular,
		testTime, testTime, categoryTitle, categorySlug,
	)
}

// categoryRow builds a single category result row.
func categoryRow(title, slug string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "slug", "description", "image_url", "sort_order", "created_at", "updated_at",
	}).AddRow(testCategoryID, title, slug, "desc", "", 0, testTime, testTime)
}
