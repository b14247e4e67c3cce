// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

type ServiceInterface interface {
	Record(ctx context.Context, rc types.RequestContext, description string)
	List(ctx context.Context, rc types.RequestContext, page, size int64) ([]*types.Notification, error)
}

type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetSubAccountByID(ctx context.Context, id string) (*types.SubAccount, error)
	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotifications(ctx context.Context, agencyID, subAccountID string, page, size int64) ([]*types.Notification, error)
}

type AccessInterface interface {
	Authorize(ctx context.Context, rc types.RequestContext) (*access.Decision, error)
}
