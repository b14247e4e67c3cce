// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		target           string
		body             string
		loginURL         string
		setupMocks       func(*MockServiceInterface)
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:   "entry redirects admins to their agency",
			method: http.MethodGet,
			target: "/agency",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Entry(gomock.Any(), gomock.Any()).Return(&Entry{User: admin, AgencyID: "a1", Redirect: "/agency/a1"}, nil)
			},
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/agency/a1",
		},
		{
			name:   "entry keeps the selected plan",
			method: http.MethodGet,
			target: "/agency?plan=price_123",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Entry(gomock.Any(), gomock.Any()).Return(&Entry{User: admin, AgencyID: "a1", Redirect: "/agency/a1"}, nil)
			},
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/agency/a1/billing?plan=price_123",
		},
		{
			name:   "entry onboarding",
			method: http.MethodGet,
			target: "/agency",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Entry(gomock.Any(), gomock.Any()).Return(&Entry{Onboarding: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "entry anonymous",
			method: http.MethodGet,
			target: "/agency",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Entry(gomock.Any(), gomock.Any()).Return(nil, access.ErrUnauthenticated)
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: access.SignInPath,
		},
		{
			name:             "sign in goes to the login ui",
			method:           http.MethodGet,
			target:           "/agency/sign-in",
			loginURL:         "https://login.example.com/ui/login",
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "https://login.example.com/ui/login",
		},
		{
			name:           "sign in without login ui",
			method:         http.MethodGet,
			target:         "/agency/sign-up",
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/v0/agencies",
			body:   `{"name":"Acme","companyEmail":"hello@acme.com","companyPhone":"1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateAgency(gomock.Any(), gomock.Any(), &AgencyInput{Name: "Acme", CompanyEmail: "hello@acme.com", CompanyPhone: "1"}).
					Return(&types.Agency{ID: "a1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "create twice",
			method: http.MethodPost,
			target: "/api/v0/agencies",
			body:   `{}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateAgency(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrAgencyExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "details page",
			method: http.MethodGet,
			target: "/agency/a1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetAgency(gomock.Any(), types.RequestContext{Scope: types.AgencyScope("a1")}).Return(&Details{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete by admin",
			method: http.MethodDelete,
			target: "/api/v0/agencies/a1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteAgency(gomock.Any(), gomock.Any()).Return(ErrOwnerRequired)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "update role",
			method: http.MethodPut,
			target: "/api/v0/agencies/a1/team/u1",
			body:   `{"role":"agency_admin"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateMemberRole(gomock.Any(), types.RequestContext{Scope: types.AgencyScope("a1")}, "u1", types.RoleAgencyAdmin).
					Return(&types.User{ID: "u1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update role with unknown role",
			method:         http.MethodPut,
			target:         "/api/v0/agencies/a1/team/u1",
			body:           `{"role":"root"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "remove member",
			method: http.MethodDelete,
			target: "/api/v0/agencies/a1/team/u1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RemoveMember(gomock.Any(), gomock.Any(), "u1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "team of a not provisioned caller",
			method: http.MethodGet,
			target: "/api/v0/agencies/a1/team",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListTeam(gomock.Any(), gomock.Any()).Return(nil, access.ErrNotProvisioned)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "me",
			method: http.MethodGet,
			target: "/api/v0/me",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Entry(gomock.Any(), gomock.Any()).Return(&Entry{Onboarding: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockServiceInterface(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}

			mux := chi.NewMux()
			NewAPI(mockService, tt.loginURL, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			}
		})
	}
}
