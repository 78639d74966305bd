// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides the shared sqlmock fixture for store unit tests.
// These run against a mocked driver so no PostgreSQL is needed.
package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
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

// expectationsMet fails the test if any configured expectation was not hit.
func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	require.NoError(t, mock.ExpectationsWereMet())
}

var (
	testTime       = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testCategoryID = uuid.New()
	testServiceID  = uuid.New()
)

// categoryRow builds a category result row in column order.
func categoryRow(title, slug string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "slug", "description", "image_url", "sort_order", "created_at", "updated_at",
	}).AddRow(testCategoryID, title, slug, "desc", "https://img.example/c.jpg", 0, testTime, testTime)
}

// serviceRow builds a joined service result row in column order.
func serviceRow(title, slug string, price float64) *sqlmock.Rows {
	return serviceRows().AddRow(
		testServiceID, testCategoryID, title, slug, "desc",
		price, "2 hours", "https://img.example/s.jpg", false,
		testTime, testTime, "Computers and Printers", "computers-and-printers",
	)
}

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "category_id", "title", "slug", "description",
		"price", "duration", "image_url", "popular",
		"created_at", "updated_at", "category_title", "category_slug",
	})
}
