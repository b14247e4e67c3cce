// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
	"github.com/canonical/agency-service/pkg/routing"
)

type users map[string]*types.User

func (u users) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	if user, ok := u[email]; ok {
		return user, nil
	}
	return nil, storage.ErrNotFound
}

func (u users) GetSubAccountByID(context.Context, string) (*types.SubAccount, error) {
	return nil, storage.ErrNotFound
}

func (u users) ListSubAccountsByAgencyID(context.Context, string) ([]*types.SubAccount, error) {
	return nil, nil
}

func (u users) GetEffectivePermission(context.Context, string, string) (*types.Permission, error) {
	return nil, storage.ErrNotFound
}

func (u users) ListEffectivePermissions(context.Context, string, string) ([]*types.Permission, error) {
	return nil, nil
}

func withCaller(caller *types.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if caller != nil {
				r = r.WithContext(types.WithCaller(r.Context(), caller))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func TestPages_Workspace(t *testing.T) {
	logger := logging.NewNoopLogger()
	store := users{
		"ada@x.com": {ID: "u1", Email: "ada@x.com", Role: types.RoleAgencyAdmin, AgencyID: "a1"},
	}
	svc := access.NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	tests := []struct {
		name           string
		caller         *types.Identity
		target         string
		expectedStatus int
	}{
		{name: "member sees the page", caller: &types.Identity{ID: "u1", Email: "ada@x.com"}, target: "/agency/a1/team", expectedStatus: http.StatusOK},
		{name: "foreign agency", caller: &types.Identity{ID: "u1", Email: "ada@x.com"}, target: "/agency/a2/team", expectedStatus: http.StatusForbidden},
		{name: "anonymous", target: "/agency/a1/team", expectedStatus: http.StatusSeeOther},
		{name: "marketing site is public", target: "/site", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := chi.NewMux()
			mux.Use(withCaller(tt.caller))
			newPages(svc, logger).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK && tt.caller != nil {
				var resp struct {
					Data Page `json:"data"`
				}
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "a1", resp.Data.AgencyID)
				assert.Equal(t, "AGENCY_ADMIN", resp.Data.Role)
			}
		})
	}
}

func TestSkipPrefixes(t *testing.T) {
	route := routing.NewMiddleware(routing.NewResolver("example.com"), logging.NewNoopLogger()).Route

	var seen string
	handler := skipPrefixes(route, unrouted...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path
		httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{})
	}))

	tests := []struct {
		host     string
		target   string
		expected string
	}{
		{host: "10.0.0.7:8080", target: "/api/v0/ready", expected: "/api/v0/ready"},
		{host: "acme.example.com", target: "/webhooks/token", expected: "/webhooks/token"},
		{host: "acme.example.com", target: "/funnels", expected: "/acme/funnels"},
		{host: "example.com", target: "/", expected: "/site"},
	}

	for _, tt := range tests {
		t.Run(tt.host+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Host = tt.host

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.expected, seen)
		})
	}
}

func TestPages_CustomDomain(t *testing.T) {
	logger := logging.NewNoopLogger()
	svc := access.NewService(users{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mux := chi.NewMux()
	mux.Use(skipPrefixes(routing.NewMiddleware(routing.NewResolver("example.com"), logger).Route, unrouted...))
	newPages(svc, logger).RegisterEndpoints(mux)

	tests := []struct {
		name           string
		host           string
		target         string
		expectedStatus int
		expectedDomain string
		expectedPath   string
	}{
		{name: "subdomain page", host: "acme.example.com", target: "/funnels/spring", expectedStatus: http.StatusOK, expectedDomain: "acme", expectedPath: "/funnels/spring"},
		{name: "subdomain root", host: "acme.example.com", target: "/", expectedStatus: http.StatusOK, expectedDomain: "acme", expectedPath: "/"},
		{name: "foreign host", host: "shop.io", target: "/cart", expectedStatus: http.StatusOK, expectedDomain: "shop.io", expectedPath: "/cart"},
		{name: "unknown api path is not a domain", host: "example.com", target: "/api/v0/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Host = tt.host
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp struct {
				Data Page `json:"data"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedDomain, resp.Data.Domain)
			assert.Equal(t, tt.expectedPath, resp.Data.Path)
		})
	}
}
