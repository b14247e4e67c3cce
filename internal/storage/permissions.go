// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/types"
)

var permissionColumns = []string{"id", "email", "sub_account_id", "access", "created_at"}

func scanPermission(row scanner) (*types.Permission, error) {
	p := new(types.Permission)
	if err := row.Scan(&p.ID, &p.Email, &p.SubAccountID, &p.Access, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePermission appends a grant or a revocation, existing rows are kept
// as history.
func (s *Storage) CreatePermission(ctx context.Context, p *types.Permission) (*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePermission")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("permissions").
		Columns("id", "email", "sub_account_id", "access").
		Values(id, p.Email, p.SubAccountID, p.Access).
		Suffix("RETURNING " + columnList(permissionColumns)).
		QueryRowContext(ctx)

	created, err := scanPermission(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert permission")
	}

	return created, nil
}

// GetEffectivePermission returns the newest row for the pair. Ids are
// UUIDv7 so they sort by creation time.
func (s *Storage) GetEffectivePermission(ctx context.Context, email, subAccountID string) (*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEffectivePermission")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(permissionColumns...).
		From("permissions").
		Where(sq.Eq{"email": email, "sub_account_id": subAccountID}).
		OrderBy("id DESC").
		Limit(1).
		QueryRowContext(ctx)

	p, err := scanPermission(row)
	if err != nil {
		return nil, wrapError(err, "failed to get permission")
	}

	return p, nil
}

// ListEffectivePermissions returns the effective row per subaccount of the
// agency for the given email.
func (s *Storage) ListEffectivePermissions(ctx context.Context, email, agencyID string) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEffectivePermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefixed("p", permissionColumns)...).
		Options("DISTINCT ON (p.sub_account_id)").
		From("permissions p").
		Join("sub_accounts sa ON sa.id = p.sub_account_id").
		Where(sq.Eq{"p.email": email, "sa.agency_id": agencyID}).
		OrderBy("p.sub_account_id", "p.id DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	permissions := make([]*types.Permission, 0)
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permission rows: %w", err)
	}

	return permissions, nil
}
