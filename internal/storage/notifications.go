// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/db"
	"github.com/canonical/agency-service/internal/types"
)

var notificationColumns = []string{"id", "notification", "agency_id", "sub_account_id", "user_id", "created_at"}

func (s *Storage) CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotification")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var subAccountID sql.NullString
	created := new(types.Notification)

	err = s.db.Statement(ctx).
		Insert("notifications").
		Columns("id", "notification", "agency_id", "sub_account_id", "user_id").
		Values(id, n.Message, n.AgencyID, nullable(n.SubAccountID), n.UserID).
		Suffix("RETURNING "+columnList(notificationColumns)).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Message, &created.AgencyID, &subAccountID, &created.UserID, &created.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to insert notification")
	}

	created.SubAccountID = fromNull(subAccountID)
	return created, nil
}

// ListNotifications pages through an agency's notifications newest first,
// restricted to one subaccount when subAccountID is set.
func (s *Storage) ListNotifications(ctx context.Context, agencyID, subAccountID string, page, size int64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotifications")
	defer span.End()

	window := db.Paginate(page, size)

	query := s.db.Statement(ctx).
		Select(append(prefixed("n", notificationColumns), "COALESCE(u.name, '')")...).
		From("notifications n").
		LeftJoin("users u ON u.id = n.user_id").
		Where(sq.Eq{"n.agency_id": agencyID}).
		OrderBy("n.created_at DESC", "n.id DESC").
		Limit(window.Limit).
		Offset(window.Offset)

	if subAccountID != "" {
		query = query.Where(sq.Eq{"n.sub_account_id": subAccountID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*types.Notification, 0)
	for rows.Next() {
		n := new(types.Notification)
		var sub sql.NullString

		if err := rows.Scan(&n.ID, &n.Message, &n.AgencyID, &sub, &n.UserID, &n.CreatedAt, &n.ActorName); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		n.SubAccountID = fromNull(sub)
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}
