// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identity := func() *types.Identity {
		return &types.Identity{ID: "identity-123", Email: "User@Example.com"}
	}

	testCases := []struct {
		name        string
		identity    *types.Identity
		setupMocks  func(*MockInvitationsInterface, *MockLoggerInterface)
		expected    string
		expectedErr bool
	}{
		{
			name:     "invited identity joins its agency",
			identity: identity(),
			setupMocks: func(mockInvitations *MockInvitationsInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockInvitations.EXPECT().Reconcile(gomock.Any(), types.RequestContext{
					Caller: &types.Identity{ID: "identity-123", Email: "user@example.com"},
				}).Return("agency-1", nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: "agency-1",
		},
		{
			name:     "identity without invitation",
			identity: identity(),
			setupMocks: func(mockInvitations *MockInvitationsInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockInvitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("", nil)
			},
			expected: "",
		},
		{
			name:     "missing email",
			identity: &types.Identity{ID: "identity-123"},
			setupMocks: func(*MockInvitationsInterface, *MockLoggerInterface) {
			},
			expectedErr: true,
		},
		{
			name:     "reconcile failure",
			identity: identity(),
			setupMocks: func(mockInvitations *MockInvitationsInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockInvitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("", errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockInvitations := NewMockInvitationsInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockInvitations, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockInvitations, mockLogger)

			agencyID, err := s.HandleRegistration(context.Background(), tc.identity)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if agencyID != tc.expected {
				t.Errorf("expected agency %q, got %q", tc.expected, agencyID)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	userID := "user-123"

	testCases := []struct {
		name         string
		request      *oauth2.TokenHookRequest
		setupMocks   func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr  bool
		validateResp func(*testing.T, *TokenHookResponse)
	}{
		{
			name: "success - agency member",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetUserByID(gomock.Any(), userID).Return(&types.User{
					ID: userID, AgencyID: "agency-1", Role: types.RoleAgencyAdmin,
				}, nil)
			},
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if resp == nil {
					t.Fatal("expected response but got nil")
				}
				if resp.Session.IDToken[AgencyClaim] != "agency-1" {
					t.Errorf("expected agency claim in ID token, got %v", resp.Session.IDToken)
				}
				if resp.Session.AccessToken[RoleClaim] != "AGENCY_ADMIN" {
					t.Errorf("expected role claim in access token, got %v", resp.Session.AccessToken)
				}
			},
		},
		{
			name: "success - user not onboarded",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetUserByID(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
			},
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if resp.Session.IDToken != nil {
					t.Error("expected no claims for a user without agency")
				}
			},
		},
		{
			name: "success - unknown user",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
			},
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if resp == nil || resp.Session.AccessToken != nil {
					t.Error("expected an empty response")
				}
			},
		},
		{
			name: "error - no user id in session",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(""),
			},
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: true,
		},
		{
			name:        "error - nil session",
			request:     &oauth2.TokenHookRequest{},
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: true,
		},
		{
			name: "error - storage error",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockInvitations := NewMockInvitationsInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockInvitations, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleTokenHook").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			resp, err := s.HandleTokenHook(context.Background(), tc.request)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if tc.validateResp != nil {
					tc.validateResp(t, resp)
				}
			}
		})
	}
}
