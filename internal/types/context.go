// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"context"
	"strings"
)

// Identity is the caller as reported by the identity provider.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// Name joins the profile names, falling back to the email.
func (i *Identity) Name() string {
	if i == nil {
		return ""
	}

	name := strings.TrimSpace(i.FirstName + " " + i.LastName)
	if name == "" {
		return i.Email
	}

	return name
}

type ScopeKind int

const (
	NoScope ScopeKind = iota
	AgencyScopeKind
	SubAccountScopeKind
)

func (k ScopeKind) String() string {
	switch k {
	case AgencyScopeKind:
		return "agency"
	case SubAccountScopeKind:
		return "subaccount"
	}
	return "none"
}

// Scope is the tenant an operation is authorized against.
type Scope struct {
	Kind         ScopeKind `json:"kind"`
	AgencyID     string    `json:"agencyId,omitempty"`
	SubAccountID string    `json:"subAccountId,omitempty"`
}

func AgencyScope(agencyID string) Scope {
	return Scope{Kind: AgencyScopeKind, AgencyID: agencyID}
}

func SubAccountScope(agencyID, subAccountID string) Scope {
	return Scope{Kind: SubAccountScopeKind, AgencyID: agencyID, SubAccountID: subAccountID}
}

func (s Scope) String() string {
	switch s.Kind {
	case AgencyScopeKind:
		return "agency:" + s.AgencyID
	case SubAccountScopeKind:
		return "subaccount:" + s.AgencyID + "/" + s.SubAccountID
	}
	return "none"
}

// RequestContext carries the caller and the tenant scope of one operation.
type RequestContext struct {
	Caller *Identity
	Scope  Scope
}

func (rc RequestContext) WithScope(s Scope) RequestContext {
	rc.Scope = s
	return rc
}

// CallerEmail is the normalized email of the caller, the key of every store
// lookup.
func (rc RequestContext) CallerEmail() string {
	if rc.Caller == nil {
		return ""
	}
	return NormalizeEmail(rc.Caller.Email)
}

// NormalizeEmail lowercases and trims an email address. Emails are stored
// and compared in this form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type callerContextKey struct{}

// WithCaller stores the resolved caller on the request context. Only the
// identity middleware should call it.
func WithCaller(ctx context.Context, caller *Identity) context.Context {
	return context.WithValue(ctx, callerContextKey{}, caller)
}

func CallerFromContext(ctx context.Context) *Identity {
	if caller, ok := ctx.Value(callerContextKey{}).(*Identity); ok {
		return caller
	}
	return nil
}

// NewRequestContext builds the explicit context handed to core operations.
func NewRequestContext(ctx context.Context, scope Scope) RequestContext {
	return RequestContext{Caller: CallerFromContext(ctx), Scope: scope}
}
