// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/types"
)

var userColumns = []string{"id", "name", "email", "avatar_url", "role", "agency_id", "created_at", "updated_at"}

func scanUser(row scanner) (*types.User, error) {
	u := new(types.User)
	var agencyID sql.NullString

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.Role, &agencyID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	u.AgencyID = fromNull(agencyID)
	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapError(err, "failed to get user")
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapError(err, "failed to get user by email")
	}

	return u, nil
}

// UpsertUser creates the user or overwrites its profile, role and agency,
// keyed by email.
func (s *Storage) UpsertUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "name", "email", "avatar_url", "role", "agency_id").
		Values(u.ID, u.Name, u.Email, u.AvatarURL, u.Role, nullable(u.AgencyID)).
		Suffix(
			"ON CONFLICT (email) DO UPDATE SET "+
				"name = EXCLUDED.name, avatar_url = EXCLUDED.avatar_url, role = EXCLUDED.role, "+
				"agency_id = EXCLUDED.agency_id, updated_at = NOW() "+
				"RETURNING "+columnList(userColumns),
		).
		QueryRowContext(ctx)

	upserted, err := scanUser(row)
	if err != nil {
		return nil, wrapError(err, "failed to upsert user")
	}

	return upserted, nil
}

// CreateTeamUser inserts a team member without ever overwriting an existing
// row. A user that exists but has no agency yet is adopted into u.AgencyID
// with u.Role. The boolean reports whether this call created or adopted the
// membership; a concurrent reconciliation that lost the race gets false.
func (s *Storage) CreateTeamUser(ctx context.Context, u *types.User) (*types.User, bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeamUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "name", "email", "avatar_url", "role", "agency_id").
		Values(u.ID, u.Name, u.Email, u.AvatarURL, u.Role, nullable(u.AgencyID)).
		Suffix("ON CONFLICT DO NOTHING RETURNING " + columnList(userColumns)).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err == nil {
		return created, true, nil
	}

	if !isNoRows(err) {
		return nil, false, wrapError(err, "failed to insert team user")
	}

	row = s.db.Statement(ctx).
		Update("users").
		SetMap(map[string]interface{}{
			"role":       u.Role,
			"agency_id":  u.AgencyID,
			"updated_at": sq.Expr("NOW()"),
		}).
		Where(sq.And{sq.Eq{"email": u.Email}, sq.Eq{"agency_id": nil}}).
		Suffix("RETURNING " + columnList(userColumns)).
		QueryRowContext(ctx)

	adopted, err := scanUser(row)
	if err == nil {
		return adopted, true, nil
	}

	if !isNoRows(err) {
		return nil, false, wrapError(err, "failed to adopt team user")
	}

	existing, err := s.GetUserByEmail(ctx, u.Email)
	if errors.Is(err, ErrNotFound) {
		// conflict on id with a different email
		return nil, false, fmt.Errorf("user %s already exists with another email: %w", u.ID, ErrDuplicateKey)
	}
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}

func (s *Storage) ListUsersByAgencyID(ctx context.Context, agencyID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByAgencyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"agency_id": agencyID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (s *Storage) UpdateUserRole(ctx context.Context, id string, role types.Role) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserRole")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("users").
		Set("role", role).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(userColumns)).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapError(err, "failed to update user role")
	}

	return u, nil
}

// DetachUser removes the user from its agency without deleting the record.
func (s *Storage) DetachUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DetachUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("agency_id", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to detach user")
	}

	n, err := rowsAffected(res, "detach user")
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
