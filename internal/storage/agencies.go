// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/types"
)

var agencyColumns = []string{
	"id", "name", "company_email", "company_phone", "address", "city", "zip_code", "state", "country",
	"agency_logo", "white_label", "goal", "created_at", "updated_at",
}

func scanAgency(row scanner) (*types.Agency, error) {
	a := new(types.Agency)
	err := row.Scan(
		&a.ID, &a.Name, &a.CompanyEmail, &a.CompanyPhone, &a.Address, &a.City, &a.ZipCode, &a.State, &a.Country,
		&a.AgencyLogo, &a.WhiteLabel, &a.Goal, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Storage) CreateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAgency")
	defer span.End()

	id := a.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return nil, err
		}
	}

	row := s.db.Statement(ctx).
		Insert("agencies").
		Columns("id", "name", "company_email", "company_phone", "address", "city", "zip_code", "state", "country", "agency_logo", "white_label", "goal").
		Values(id, a.Name, a.CompanyEmail, a.CompanyPhone, a.Address, a.City, a.ZipCode, a.State, a.Country, a.AgencyLogo, a.WhiteLabel, a.Goal).
		Suffix("RETURNING " + columnList(agencyColumns)).
		QueryRowContext(ctx)

	agency, err := scanAgency(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert agency")
	}

	return agency, nil
}

func (s *Storage) GetAgencyByID(ctx context.Context, id string) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAgencyByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(agencyColumns...).
		From("agencies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	agency, err := scanAgency(row)
	if err != nil {
		return nil, wrapError(err, "failed to get agency")
	}

	return agency, nil
}

func (s *Storage) UpdateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAgency")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("agencies").
		SetMap(map[string]interface{}{
			"name":          a.Name,
			"company_email": a.CompanyEmail,
			"company_phone": a.CompanyPhone,
			"address":       a.Address,
			"city":          a.City,
			"zip_code":      a.ZipCode,
			"state":         a.State,
			"country":       a.Country,
			"agency_logo":   a.AgencyLogo,
			"white_label":   a.WhiteLabel,
			"goal":          a.Goal,
			"updated_at":    sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": a.ID}).
		Suffix("RETURNING " + columnList(agencyColumns)).
		QueryRowContext(ctx)

	agency, err := scanAgency(row)
	if err != nil {
		return nil, wrapError(err, "failed to update agency")
	}

	return agency, nil
}

// DeleteAgency removes the agency, the schema cascades to its subaccounts,
// permissions, sidebar options, invitations and notifications.
func (s *Storage) DeleteAgency(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAgency")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("agencies").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to delete agency")
	}

	n, err := rowsAffected(res, "delete agency")
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
