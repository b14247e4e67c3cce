// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/types"
)

// UpsertRoleSyncTask records that the identity provider still has to learn
// about role. It is written in the same transaction as the store role.
func (s *Storage) UpsertRoleSyncTask(ctx context.Context, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertRoleSyncTask")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("role_sync_tasks").
		Columns("user_id", "role").
		Values(userID, role).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role, attempts = 0, last_error = '', updated_at = NOW()").
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to upsert role sync task")
	}

	return nil
}

// DeleteRoleSyncTask clears the marker only if it still holds role, so a
// newer role change is never dropped by an older sync.
func (s *Storage) DeleteRoleSyncTask(ctx context.Context, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRoleSyncTask")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("role_sync_tasks").
		Where(sq.Eq{"user_id": userID, "role": role}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to delete role sync task")
	}

	return nil
}

func (s *Storage) MarkRoleSyncFailed(ctx context.Context, userID string, reason string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkRoleSyncFailed")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("role_sync_tasks").
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", reason).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to mark role sync failure")
	}

	return nil
}

func (s *Storage) ListRoleSyncTasks(ctx context.Context, limit uint64) ([]*types.RoleSyncTask, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoleSyncTasks")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("user_id", "role", "attempts", "last_error", "created_at", "updated_at").
		From("role_sync_tasks").
		OrderBy("updated_at ASC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role sync tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*types.RoleSyncTask, 0)
	for rows.Next() {
		t := new(types.RoleSyncTask)
		if err := rows.Scan(&t.UserID, &t.Role, &t.Attempts, &t.LastError, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role sync task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role sync rows: %w", err)
	}

	return tasks, nil
}

func (s *Storage) CountRoleSyncTasks(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountRoleSyncTasks")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("role_sync_tasks").
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count role sync tasks: %w", err)
	}

	return count, nil
}
