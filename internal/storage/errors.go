// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgerrcode.ForeignKeyViolation
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation.
func IsCheckViolation(err error) bool {
	return pgCode(err) == pgerrcode.CheckViolation
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// wrapError maps driver errors onto the storage sentinels, keeping the
// original error in the chain for logging.
func wrapError(err error, context string) error {
	switch {
	case err == nil:
		return nil
	case isNoRows(err):
		return fmt.Errorf("%s: %w", context, ErrNotFound)
	case IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", context, errors.Join(ErrDuplicateKey, err))
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", context, errors.Join(ErrForeignKeyViolation, err))
	case IsCheckViolation(err):
		return fmt.Errorf("%s: %w", context, errors.Join(ErrCheckViolation, err))
	}

	return fmt.Errorf("%s: %w", context, err)
}
