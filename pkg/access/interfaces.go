// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"net/http"

	"github.com/canonical/agency-service/internal/types"
)

type ServiceInterface interface {
	Authorize(ctx context.Context, rc types.RequestContext) (*Decision, error)
	ScopeForSubAccount(ctx context.Context, subAccountID string) (types.Scope, error)
	VisibleSubAccounts(ctx context.Context, user *types.User) ([]*types.SubAccount, error)
	RequireScope(scope ScopeFunc) func(http.Handler) http.Handler
}

// StorageInterface is the part of the Tenant Store decisions are made on.
type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetSubAccountByID(ctx context.Context, id string) (*types.SubAccount, error)
	ListSubAccountsByAgencyID(ctx context.Context, agencyID string) ([]*types.SubAccount, error)
	GetEffectivePermission(ctx context.Context, email, subAccountID string) (*types.Permission, error)
	ListEffectivePermissions(ctx context.Context, email, agencyID string) ([]*types.Permission, error)
}
