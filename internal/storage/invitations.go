// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/types"
)

var invitationColumns = []string{"id", "email", "agency_id", "role", "status", "created_at", "updated_at"}

func scanInvitation(row scanner) (*types.Invitation, error) {
	i := new(types.Invitation)
	if err := row.Scan(&i.ID, &i.Email, &i.AgencyID, &i.Role, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return i, nil
}

// CreateInvitation fails with ErrDuplicateKey when the email already has a
// pending invitation, the schema keeps a partial unique index on it.
func (s *Storage) CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "email", "agency_id", "role", "status").
		Values(id, i.Email, i.AgencyID, i.Role, types.InvitationPending).
		Suffix("RETURNING " + columnList(invitationColumns)).
		QueryRowContext(ctx)

	created, err := scanInvitation(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert invitation")
	}

	return created, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	i, err := scanInvitation(row)
	if err != nil {
		return nil, wrapError(err, "failed to get invitation")
	}

	return i, nil
}

func (s *Storage) GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitationByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(sq.Eq{"email": email, "status": types.InvitationPending}).
		QueryRowContext(ctx)

	i, err := scanInvitation(row)
	if err != nil {
		return nil, wrapError(err, "failed to get pending invitation")
	}

	return i, nil
}

func (s *Storage) ListInvitationsByAgencyID(ctx context.Context, agencyID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByAgencyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(sq.Eq{"agency_id": agencyID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	invitations := make([]*types.Invitation, 0)
	for rows.Next() {
		i, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invitation rows: %w", err)
	}

	return invitations, nil
}

// AcceptInvitation moves a pending invitation to ACCEPTED. It reports false
// when the invitation was no longer pending.
func (s *Storage) AcceptInvitation(ctx context.Context, id string) (bool, error) {
	return s.transitionInvitation(ctx, "storage.AcceptInvitation", id, types.InvitationAccepted)
}

func (s *Storage) CancelInvitation(ctx context.Context, id string) (bool, error) {
	return s.transitionInvitation(ctx, "storage.CancelInvitation", id, types.InvitationCancelled)
}

func (s *Storage) transitionInvitation(ctx context.Context, span string, id string, status types.InvitationStatus) (bool, error) {
	ctx, sp := s.tracer.Start(ctx, span)
	defer sp.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": types.InvitationPending}).
		ExecContext(ctx)
	if err != nil {
		return false, wrapError(err, fmt.Sprintf("failed to mark invitation %s", status))
	}

	n, err := rowsAffected(res, "transition invitation")
	if err != nil {
		return false, err
	}

	return n == 1, nil
}
