// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"errors"
	"fmt"

	"github.com/canonical/agency-service/internal/types"
)

const (
	ReasonUnauthenticated  = "unauthenticated"
	ReasonNotProvisioned   = "not provisioned"
	ReasonInsufficientRole = "insufficient role"
	ReasonNoGrant          = "no grant"
	ReasonUnknownTenant    = "unknown tenant"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotProvisioned  = errors.New("not provisioned")
	ErrNotAuthorized   = errors.New("not authorized")
)

// Decision is the outcome of Authorize. User is set whenever the caller has
// a store record, also on denials.
type Decision struct {
	Allowed bool
	Reason  string
	User    *types.User
}

func allow(user *types.User) *Decision {
	return &Decision{Allowed: true, User: user}
}

func deny(reason string, user *types.User) *Decision {
	return &Decision{Reason: reason, User: user}
}

// Err converts a denial into the matching sentinel, nil when allowed.
func (d *Decision) Err() error {
	if d.Allowed {
		return nil
	}

	switch d.Reason {
	case ReasonUnauthenticated:
		return ErrUnauthenticated
	case ReasonNotProvisioned:
		return ErrNotProvisioned
	}

	return fmt.Errorf("%w: %s", ErrNotAuthorized, d.Reason)
}
