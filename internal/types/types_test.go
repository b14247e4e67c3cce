// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"context"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{input: "AGENCY_OWNER", want: RoleAgencyOwner},
		{input: " agency_admin ", want: RoleAgencyAdmin},
		{input: "subaccount_user", want: RoleSubAccountUser},
		{input: "SUBACCOUNT_GUEST", want: RoleSubAccountGuest},
		{input: "ROOT", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsAgencyRole(t *testing.T) {
	for _, r := range Roles {
		want := r == RoleAgencyOwner || r == RoleAgencyAdmin
		if r.IsAgencyRole() != want {
			t.Errorf("%s.IsAgencyRole() = %v, want %v", r, r.IsAgencyRole(), want)
		}
	}
}

func TestIdentityName(t *testing.T) {
	var nilIdentity *Identity
	if nilIdentity.Name() != "" {
		t.Fatal("nil identity should have an empty name")
	}

	i := &Identity{Email: "bob@x.com"}
	if i.Name() != "bob@x.com" {
		t.Fatalf("expected email fallback, got %q", i.Name())
	}

	i.FirstName = "Bob"
	i.LastName = "Smith"
	if i.Name() != "Bob Smith" {
		t.Fatalf("expected full name, got %q", i.Name())
	}
}

func TestCallerContext(t *testing.T) {
	ctx := context.Background()
	if CallerFromContext(ctx) != nil {
		t.Fatal("expected no caller on an empty context")
	}

	caller := &Identity{ID: "u1", Email: "owner@a1.com"}
	rc := NewRequestContext(WithCaller(ctx, caller), AgencyScope("a1"))

	if rc.Caller != caller {
		t.Fatal("expected caller to be carried into the request context")
	}
	if rc.Scope.String() != "agency:a1" {
		t.Fatalf("unexpected scope %s", rc.Scope)
	}

	sub := rc.WithScope(SubAccountScope("a1", "s1"))
	if sub.Scope.Kind != SubAccountScopeKind || rc.Scope.Kind != AgencyScopeKind {
		t.Fatal("WithScope must not mutate the original request context")
	}
}
