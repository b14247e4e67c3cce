// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subaccount

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

type ServiceInterface interface {
	Landing(ctx context.Context, rc types.RequestContext) (string, error)
	CreateSubAccount(ctx context.Context, rc types.RequestContext, in *SubAccountInput) (*types.SubAccount, error)
	UpdateSubAccount(ctx context.Context, rc types.RequestContext, in *SubAccountInput) (*types.SubAccount, error)
	DeleteSubAccount(ctx context.Context, rc types.RequestContext) error
	GetSubAccount(ctx context.Context, rc types.RequestContext) (*Details, error)
	ListSubAccounts(ctx context.Context, rc types.RequestContext) ([]*types.SubAccount, error)
	SetPermission(ctx context.Context, rc types.RequestContext, email, subAccountID string, allow bool) (*types.Permission, error)
	ListPermissions(ctx context.Context, rc types.RequestContext, email string) ([]*types.Permission, error)
}

type StorageInterface interface {
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsersByAgencyID(ctx context.Context, agencyID string) ([]*types.User, error)
	CreateSubAccount(ctx context.Context, s *types.SubAccount) (*types.SubAccount, error)
	GetSubAccountByID(ctx context.Context, id string) (*types.SubAccount, error)
	UpdateSubAccount(ctx context.Context, s *types.SubAccount) (*types.SubAccount, error)
	DeleteSubAccount(ctx context.Context, id string) error
	CreatePermission(ctx context.Context, p *types.Permission) (*types.Permission, error)
	ListEffectivePermissions(ctx context.Context, email, agencyID string) ([]*types.Permission, error)
	CreateSidebarOptions(ctx context.Context, options []*types.SidebarOption) error
	ListSidebarOptionsBySubAccountID(ctx context.Context, subAccountID string) ([]*types.SidebarOption, error)
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AccessInterface interface {
	Authorize(ctx context.Context, rc types.RequestContext) (*access.Decision, error)
	VisibleSubAccounts(ctx context.Context, user *types.User) ([]*types.SubAccount, error)
}

type InvitationsInterface interface {
	Reconcile(ctx context.Context, rc types.RequestContext) (string, error)
}

type NotifierInterface interface {
	Record(ctx context.Context, rc types.RequestContext, description string)
}

type AuthorizerInterface interface {
	SetSubAccountParent(ctx context.Context, subAccountID, agencyID string) error
	SetSubAccountGrant(ctx context.Context, subAccountID, userID string, allow bool) error
	DeleteSubAccount(ctx context.Context, subAccountID string) error
}
