// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken checks the signature and access policy of a bearer token
	// and returns the principal it was issued to.
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}
