// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the PostgreSQL data access layer. Each store
// wraps a *sql.DB and maps database error codes onto the sentinel errors
// callers branch on.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes surfaced to users with distinct messages.
const (
	pgUniqueViolation = "23505"
	pgInvalidText     = "22P02"
)

var (
	// ErrDuplicate marks a write rejected by a uniqueness constraint,
	// such as an already-subscribed newsletter email or a repeated
	// booking request.
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidInput marks a write the database rejected for malformed
	// values, typically a bad text representation in a typed column.
	ErrInvalidInput = errors.New("invalid input data")
)

// translateErr maps pgx driver errors onto the package sentinels while
// keeping the original error in the chain.
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgInvalidText:
			return ErrInvalidInput
		}
	}
	return err
}
