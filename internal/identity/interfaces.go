// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
)

// KratosClientInterface is the subset of the identity provider client used
// to resolve the caller.
type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
	ToSession(ctx context.Context, cookie string) (*types.Identity, error)
}
