// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
)

// Principal is the bearer of a verified token. AgencyID and Role are the
// claims added by the token hook at issue time, they can be stale and are
// never used for access decisions.
type Principal struct {
	Subject  string
	AgencyID string
	Role     types.Role
}

type principalContextKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal of a verified bearer token, nil
// for requests without one.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey{}).(*Principal)
	return p
}
