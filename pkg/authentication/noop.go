// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a verifier for local development, the raw token is
// taken as the subject.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	if rawToken == "" {
		return nil, errors.New("empty token")
	}
	return &Principal{Subject: rawToken}, nil
}
