// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/identity"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/invitations"
)

func TestAPIClient_Do(t *testing.T) {
	var got invitations.CreateInvitationRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v0/agencies/a1/invitations":
			assert.Equal(t, "u1", r.Header.Get(identity.HeaderName))
			assert.Equal(t, "Bearer t0k", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{
				Data: invitations.Invite{
					Invitation: &types.Invitation{ID: "i1", Email: got.Email, Role: types.RoleSubAccountUser},
					Link:       "https://login/recovery",
				},
			})
		case "/agency":
			http.Redirect(w, r, "/agency/a1", http.StatusTemporaryRedirect)
		default:
			httptypes.WriteError(w, http.StatusForbidden, "not authorized")
		}
	}))
	defer srv.Close()

	c := newAPIClient(srv.URL+"/", "u1", "t0k")

	invite := new(invitations.Invite)
	err := c.do(context.Background(), http.MethodPost, "/api/v0/agencies/a1/invitations", invitations.CreateInvitationRequest{Email: "bob@x.com", Role: "SUBACCOUNT_USER"}, invite)
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", got.Email)
	assert.Equal(t, "i1", invite.Invitation.ID)
	assert.Equal(t, "https://login/recovery", invite.Link)

	err = c.do(context.Background(), http.MethodGet, "/agency", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/agency/a1")

	err = c.do(context.Background(), http.MethodGet, "/api/v0/agencies/a2", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestValidMigrateArgs(t *testing.T) {
	tests := []struct {
		args  []string
		valid bool
	}{
		{args: nil, valid: true},
		{args: []string{"up"}, valid: true},
		{args: []string{"down", "3"}, valid: true},
		{args: []string{"down", "-1"}},
		{args: []string{"up", "3"}},
		{args: []string{"sideways"}},
	}

	for _, tt := range tests {
		err := validMigrateArgs(migrateCmd, tt.args)
		assert.Equal(t, tt.valid, err == nil, "args %v", tt.args)
	}
}
