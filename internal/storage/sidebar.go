// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/types"
)

var sidebarColumns = []string{"id", "name", "icon", "link", "agency_id", "sub_account_id", "created_at"}

func (s *Storage) CreateSidebarOptions(ctx context.Context, options []*types.SidebarOption) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSidebarOptions")
	defer span.End()

	if len(options) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("sidebar_options").
		Columns("id", "name", "icon", "link", "agency_id", "sub_account_id")

	for _, o := range options {
		id, err := newID()
		if err != nil {
			return err
		}
		insert = insert.Values(id, o.Name, o.Icon, o.Link, nullable(o.AgencyID), nullable(o.SubAccountID))
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		return wrapError(err, "failed to insert sidebar options")
	}

	return nil
}

func (s *Storage) ListSidebarOptionsByAgencyID(ctx context.Context, agencyID string) ([]*types.SidebarOption, error) {
	return s.listSidebarOptions(ctx, "storage.ListSidebarOptionsByAgencyID", sq.Eq{"agency_id": agencyID})
}

func (s *Storage) ListSidebarOptionsBySubAccountID(ctx context.Context, subAccountID string) ([]*types.SidebarOption, error) {
	return s.listSidebarOptions(ctx, "storage.ListSidebarOptionsBySubAccountID", sq.Eq{"sub_account_id": subAccountID})
}

func (s *Storage) listSidebarOptions(ctx context.Context, spanName string, filter sq.Eq) ([]*types.SidebarOption, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(sidebarColumns...).
		From("sidebar_options").
		Where(filter).
		OrderBy("id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sidebar options: %w", err)
	}
	defer rows.Close()

	options := make([]*types.SidebarOption, 0)
	for rows.Next() {
		o := new(types.SidebarOption)
		var agencyID, subAccountID sql.NullString

		if err := rows.Scan(&o.ID, &o.Name, &o.Icon, &o.Link, &agencyID, &subAccountID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sidebar option: %w", err)
		}

		o.AgencyID = fromNull(agencyID)
		o.SubAccountID = fromNull(subAccountID)
		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sidebar rows: %w", err)
	}

	return options, nil
}
