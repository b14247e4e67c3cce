// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

type ServiceInterface interface {
	Reconcile(ctx context.Context, rc types.RequestContext) (string, error)
	CreateInvitation(ctx context.Context, rc types.RequestContext, email string, role types.Role) (*Invite, error)
	CancelInvitation(ctx context.Context, rc types.RequestContext, id string) error
	ListInvitations(ctx context.Context, rc types.RequestContext) ([]*types.Invitation, error)
}

type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	CreateTeamUser(ctx context.Context, u *types.User) (*types.User, bool, error)
	UpsertRoleSyncTask(ctx context.Context, userID string, role types.Role) error
	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error)
	ListInvitationsByAgencyID(ctx context.Context, agencyID string) ([]*types.Invitation, error)
	AcceptInvitation(ctx context.Context, id string) (bool, error)
	CancelInvitation(ctx context.Context, id string) (bool, error)
}

// TxInterface runs fn in one store transaction.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AccessInterface interface {
	Authorize(ctx context.Context, rc types.RequestContext) (*access.Decision, error)
}

type NotifierInterface interface {
	Record(ctx context.Context, rc types.RequestContext, description string)
}

type RoleSyncInterface interface {
	Sync(ctx context.Context, userID string, role types.Role) error
}

type AuthorizerInterface interface {
	AssignAgencyRole(ctx context.Context, agencyID, userID string, role types.Role) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

// LimiterInterface budgets invitation creation per agency.
type LimiterInterface interface {
	Allow(agencyID string) bool
}
