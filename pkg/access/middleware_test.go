// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/types"
)

func TestService_RequireScope(t *testing.T) {
	tests := []struct {
		name             string
		caller           *types.Identity
		setupMocks       func(*MockStorageInterface)
		expectedStatus   int
		expectedLocation string
		expectOnboarding bool
	}{
		{
			name:             "anonymous is sent to sign-in",
			setupMocks:       func(s *MockStorageInterface) {},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: SignInPath,
		},
		{
			name:   "not provisioned is sent to onboarding",
			caller: &types.Identity{ID: "u1", Email: "bob@x.com"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(nil, notFound)
			},
			expectedStatus:   http.StatusForbidden,
			expectOnboarding: true,
		},
		{
			name:   "foreign agency is forbidden",
			caller: &types.Identity{ID: "u1", Email: "bob@x.com"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyOwner, "a2"), nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "store failure",
			caller: &types.Identity{ID: "u1", Email: "bob@x.com"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "owner passes",
			caller: &types.Identity{ID: "u1", Email: "bob@x.com"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyOwner, "a1"), nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tt.setupMocks(mockStorage)

			router := chi.NewMux()
			router.With(s.RequireScope(AgencyParam("agencyID"))).Get("/agency/{agencyID}", func(w http.ResponseWriter, r *http.Request) {
				if DecisionFromContext(r.Context()) == nil {
					t.Error("expected decision in context")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/agency/a1", nil)
			if tt.caller != nil {
				req = req.WithContext(types.WithCaller(req.Context(), tt.caller))
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
			if tt.expectOnboarding {
				var body map[string]any
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, true, body["onboarding"])
			}
		})
	}
}
