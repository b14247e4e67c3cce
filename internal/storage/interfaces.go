// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
)

type AgencyStorageInterface interface {
	CreateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error)
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	UpdateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error)
	DeleteAgency(ctx context.Context, id string) error
}

type SubAccountStorageInterface interface {
	CreateSubAccount(ctx context.Context, s *types.SubAccount) (*types.SubAccount, error)
	GetSubAccountByID(ctx context.Context, id string) (*types.SubAccount, error)
	ListSubAccountsByAgencyID(ctx context.Context, agencyID string) ([]*types.SubAccount, error)
	UpdateSubAccount(ctx context.Context, s *types.SubAccount) (*types.SubAccount, error)
	DeleteSubAccount(ctx context.Context, id string) error
}

type UserStorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
	CreateTeamUser(ctx context.Context, u *types.User) (*types.User, bool, error)
	ListUsersByAgencyID(ctx context.Context, agencyID string) ([]*types.User, error)
	UpdateUserRole(ctx context.Context, id string, role types.Role) (*types.User, error)
	DetachUser(ctx context.Context, id string) error
}

type PermissionStorageInterface interface {
	CreatePermission(ctx context.Context, p *types.Permission) (*types.Permission, error)
	GetEffectivePermission(ctx context.Context, email, subAccountID string) (*types.Permission, error)
	ListEffectivePermissions(ctx context.Context, email, agencyID string) ([]*types.Permission, error)
}

type InvitationStorageInterface interface {
	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error)
	ListInvitationsByAgencyID(ctx context.Context, agencyID string) ([]*types.Invitation, error)
	AcceptInvitation(ctx context.Context, id string) (bool, error)
	CancelInvitation(ctx context.Context, id string) (bool, error)
}

type NotificationStorageInterface interface {
	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotifications(ctx context.Context, agencyID, subAccountID string, page, size int64) ([]*types.Notification, error)
}

type SidebarStorageInterface interface {
	CreateSidebarOptions(ctx context.Context, options []*types.SidebarOption) error
	ListSidebarOptionsByAgencyID(ctx context.Context, agencyID string) ([]*types.SidebarOption, error)
	ListSidebarOptionsBySubAccountID(ctx context.Context, subAccountID string) ([]*types.SidebarOption, error)
}

type RoleSyncStorageInterface interface {
	UpsertRoleSyncTask(ctx context.Context, userID string, role types.Role) error
	DeleteRoleSyncTask(ctx context.Context, userID string, role types.Role) error
	MarkRoleSyncFailed(ctx context.Context, userID string, reason string) error
	ListRoleSyncTasks(ctx context.Context, limit uint64) ([]*types.RoleSyncTask, error)
	CountRoleSyncTasks(ctx context.Context) (int, error)
}

// StorageInterface is the Tenant Store, services depend on the narrower
// interfaces they need.
type StorageInterface interface {
	AgencyStorageInterface
	SubAccountStorageInterface
	UserStorageInterface
	PermissionStorageInterface
	InvitationStorageInterface
	NotificationStorageInterface
	SidebarStorageInterface
	RoleSyncStorageInterface
}
