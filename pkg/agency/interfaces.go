// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

type ServiceInterface interface {
	Entry(ctx context.Context, rc types.RequestContext) (*Entry, error)
	CreateAgency(ctx context.Context, rc types.RequestContext, in *AgencyInput) (*types.Agency, error)
	UpdateAgency(ctx context.Context, rc types.RequestContext, in *AgencyInput) (*types.Agency, error)
	DeleteAgency(ctx context.Context, rc types.RequestContext) error
	GetAgency(ctx context.Context, rc types.RequestContext) (*Details, error)
	ListTeam(ctx context.Context, rc types.RequestContext) ([]*types.User, error)
	UpdateMemberRole(ctx context.Context, rc types.RequestContext, userID string, role types.Role) (*types.User, error)
	RemoveMember(ctx context.Context, rc types.RequestContext, userID string) error
}

type StorageInterface interface {
	CreateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error)
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	UpdateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error)
	DeleteAgency(ctx context.Context, id string) error
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
	ListUsersByAgencyID(ctx context.Context, agencyID string) ([]*types.User, error)
	UpdateUserRole(ctx context.Context, id string, role types.Role) (*types.User, error)
	DetachUser(ctx context.Context, id string) error
	CreateSidebarOptions(ctx context.Context, options []*types.SidebarOption) error
	ListSidebarOptionsByAgencyID(ctx context.Context, agencyID string) ([]*types.SidebarOption, error)
	ListNotifications(ctx context.Context, agencyID, subAccountID string, page, size int64) ([]*types.Notification, error)
	UpsertRoleSyncTask(ctx context.Context, userID string, role types.Role) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AccessInterface interface {
	Authorize(ctx context.Context, rc types.RequestContext) (*access.Decision, error)
}

type InvitationsInterface interface {
	Reconcile(ctx context.Context, rc types.RequestContext) (string, error)
}

type NotifierInterface interface {
	Record(ctx context.Context, rc types.RequestContext, description string)
}

type RoleSyncInterface interface {
	Sync(ctx context.Context, userID string, role types.Role) error
}

type AuthorizerInterface interface {
	AssignAgencyRole(ctx context.Context, agencyID, userID string, role types.Role) error
	RemoveAgencyMember(ctx context.Context, agencyID, userID string) error
	DeleteAgency(ctx context.Context, agencyID string) error
}
