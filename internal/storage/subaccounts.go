// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/types"
)

var subAccountColumns = []string{
	"id", "agency_id", "name", "company_email", "company_phone", "address", "city", "zip_code", "state", "country",
	"sub_account_logo", "goal", "created_at", "updated_at",
}

func scanSubAccount(row scanner) (*types.SubAccount, error) {
	sa := new(types.SubAccount)
	err := row.Scan(
		&sa.ID, &sa.AgencyID, &sa.Name, &sa.CompanyEmail, &sa.CompanyPhone, &sa.Address, &sa.City, &sa.ZipCode, &sa.State, &sa.Country,
		&sa.SubAccountLogo, &sa.Goal, &sa.CreatedAt, &sa.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sa, nil
}

func (s *Storage) CreateSubAccount(ctx context.Context, sa *types.SubAccount) (*types.SubAccount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSubAccount")
	defer span.End()

	id := sa.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return nil, err
		}
	}

	row := s.db.Statement(ctx).
		Insert("sub_accounts").
		Columns("id", "agency_id", "name", "company_email", "company_phone", "address", "city", "zip_code", "state", "country", "sub_account_logo", "goal").
		Values(id, sa.AgencyID, sa.Name, sa.CompanyEmail, sa.CompanyPhone, sa.Address, sa.City, sa.ZipCode, sa.State, sa.Country, sa.SubAccountLogo, sa.Goal).
		Suffix("RETURNING " + columnList(subAccountColumns)).
		QueryRowContext(ctx)

	created, err := scanSubAccount(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert subaccount")
	}

	return created, nil
}

func (s *Storage) GetSubAccountByID(ctx context.Context, id string) (*types.SubAccount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSubAccountByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(subAccountColumns...).
		From("sub_accounts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	sa, err := scanSubAccount(row)
	if err != nil {
		return nil, wrapError(err, "failed to get subaccount")
	}

	return sa, nil
}

func (s *Storage) ListSubAccountsByAgencyID(ctx context.Context, agencyID string) ([]*types.SubAccount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSubAccountsByAgencyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(subAccountColumns...).
		From("sub_accounts").
		Where(sq.Eq{"agency_id": agencyID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subaccounts: %w", err)
	}
	defer rows.Close()

	subAccounts := make([]*types.SubAccount, 0)
	for rows.Next() {
		sa, err := scanSubAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subaccount: %w", err)
		}
		subAccounts = append(subAccounts, sa)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subaccount rows: %w", err)
	}

	return subAccounts, nil
}

// UpdateSubAccount never touches agency_id, the parent is fixed at creation.
func (s *Storage) UpdateSubAccount(ctx context.Context, sa *types.SubAccount) (*types.SubAccount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSubAccount")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("sub_accounts").
		SetMap(map[string]interface{}{
			"name":             sa.Name,
			"company_email":    sa.CompanyEmail,
			"company_phone":    sa.CompanyPhone,
			"address":          sa.Address,
			"city":             sa.City,
			"zip_code":         sa.ZipCode,
			"state":            sa.State,
			"country":          sa.Country,
			"sub_account_logo": sa.SubAccountLogo,
			"goal":             sa.Goal,
			"updated_at":       sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": sa.ID}).
		Suffix("RETURNING " + columnList(subAccountColumns)).
		QueryRowContext(ctx)

	updated, err := scanSubAccount(row)
	if err != nil {
		return nil, wrapError(err, "failed to update subaccount")
	}

	return updated, nil
}

func (s *Storage) DeleteSubAccount(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSubAccount")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("sub_accounts").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to delete subaccount")
	}

	n, err := rowsAffected(res, "delete subaccount")
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
