// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

func identityJSON(id, email string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"schema_id":  "default",
		"schema_url": "http://kratos/schemas/default",
		"traits": map[string]interface{}{
			"email":   email,
			"picture": "https://img/" + id,
			"name": map[string]interface{}{
				"first": "Bob",
				"last":  "Builder",
			},
		},
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	return NewClient(srv.URL, srv.URL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("agency-service", logger), logger)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_GetIdentity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/identities/u1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, identityJSON("u1", "Bob@X.com "))
	})
	mux.HandleFunc("GET /admin/identities/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": map[string]interface{}{"code": 404, "message": "not found"}})
	})

	c := newTestClient(t, mux)

	identity, err := c.GetIdentity(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &types.Identity{
		ID:        "u1",
		Email:     "bob@x.com",
		FirstName: "Bob",
		LastName:  "Builder",
		ImageURL:  "https://img/u1",
	}, identity)

	identity, err = c.GetIdentity(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestClient_GetIdentityIDByEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/identities", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("credentials_identifier") == "bob@x.com" {
			writeJSON(w, http.StatusOK, []interface{}{identityJSON("u1", "bob@x.com")})
			return
		}
		writeJSON(w, http.StatusOK, []interface{}{})
	})

	c := newTestClient(t, mux)

	id, err := c.GetIdentityIDByEmail(context.Background(), "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	id, err = c.GetIdentityIDByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestClient_SetUserRole(t *testing.T) {
	tests := []struct {
		name     string
		metadata interface{}
		expected map[string]interface{}
	}{
		{
			name:     "identity without public metadata",
			metadata: nil,
			expected: map[string]interface{}{"role": "SUBACCOUNT_USER"},
		},
		{
			name:     "other keys are kept",
			metadata: map[string]interface{}{"plan": "pro", "role": "AGENCY_ADMIN"},
			expected: map[string]interface{}{"plan": "pro", "role": "SUBACCOUNT_USER"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var patch []map[string]interface{}

			mux := http.NewServeMux()
			mux.HandleFunc("GET /admin/identities/u1", func(w http.ResponseWriter, r *http.Request) {
				identity := identityJSON("u1", "bob@x.com")
				identity["metadata_public"] = test.metadata
				writeJSON(w, http.StatusOK, identity)
			})
			mux.HandleFunc("PATCH /admin/identities/u1", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewDecoder(r.Body).Decode(&patch)
				writeJSON(w, http.StatusOK, identityJSON("u1", "bob@x.com"))
			})

			c := newTestClient(t, mux)

			require.NoError(t, c.SetUserRole(context.Background(), "u1", types.RoleSubAccountUser))
			require.Len(t, patch, 1)
			assert.Equal(t, "add", patch[0]["op"])
			assert.Equal(t, "/metadata_public", patch[0]["path"])
			assert.Equal(t, test.expected, patch[0]["value"])
		})
	}
}

func TestClient_SetUserRoleFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/identities/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": map[string]interface{}{"code": 404, "message": "not found"}})
	})
	mux.HandleFunc("GET /admin/identities/u2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, identityJSON("u2", "eve@x.com"))
	})
	mux.HandleFunc("PATCH /admin/identities/u2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": map[string]interface{}{"code": 500, "message": "boom"}})
	})

	c := newTestClient(t, mux)

	assert.Error(t, c.SetUserRole(context.Background(), "missing", types.RoleSubAccountUser))
	assert.Error(t, c.SetUserRole(context.Background(), "u2", types.RoleSubAccountUser))
}

func TestClient_ToSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions/whoami", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "ory_kratos_session=valid" {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": map[string]interface{}{"code": 401, "message": "no session"}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":       "s1",
			"active":   true,
			"identity": identityJSON("u1", "bob@x.com"),
		})
	})

	c := newTestClient(t, mux)

	identity, err := c.ToSession(context.Background(), "ory_kratos_session=valid")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "u1", identity.ID)
	assert.Equal(t, "bob@x.com", identity.Email)

	identity, err = c.ToSession(context.Background(), "ory_kratos_session=expired")
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestClient_ToSessionWithoutPublicURL(t *testing.T) {
	logger := logging.NewNoopLogger()
	c := NewClient("http://127.0.0.1:1", "", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("agency-service", logger), logger)

	identity, err := c.ToSession(context.Background(), "ory_kratos_session=valid")
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestIdentityFromOryWithoutTraits(t *testing.T) {
	assert.Nil(t, identityFromOry(nil))
}
