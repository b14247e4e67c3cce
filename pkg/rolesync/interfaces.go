// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rolesync

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
)

type ServiceInterface interface {
	Sync(ctx context.Context, userID string, role types.Role) error
	Reconcile(ctx context.Context) (int, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	UpsertRoleSyncTask(ctx context.Context, userID string, role types.Role) error
	DeleteRoleSyncTask(ctx context.Context, userID string, role types.Role) error
	MarkRoleSyncFailed(ctx context.Context, userID string, reason string) error
	ListRoleSyncTasks(ctx context.Context, limit uint64) ([]*types.RoleSyncTask, error)
	CountRoleSyncTasks(ctx context.Context) (int, error)
}

type KratosClientInterface interface {
	SetUserRole(ctx context.Context, id string, role types.Role) error
}

// pendingGauge is implemented by monitors exposing the backlog size.
type pendingGauge interface {
	SetRoleSyncPending(float64)
}
