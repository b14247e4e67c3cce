// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_interfaces.go -source=./interfaces.go

var notFound = fmt.Errorf("lookup: %w", storage.ErrNotFound)

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	logger := logging.NewNoopLogger()
	return NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("agency-service", logger), logger), mockStorage
}

func user(role types.Role, agencyID string) *types.User {
	return &types.User{ID: "u1", Email: "bob@x.com", Role: role, AgencyID: agencyID}
}

func TestService_Authorize(t *testing.T) {
	caller := &types.Identity{ID: "u1", Email: "bob@x.com"}
	sub := &types.SubAccount{ID: "s1", AgencyID: "a1"}

	tests := []struct {
		name           string
		rc             types.RequestContext
		setupMocks     func(*MockStorageInterface)
		expectedAllow  bool
		expectedReason string
		expectedErr    bool
	}{
		{
			name:           "anonymous caller",
			rc:             types.RequestContext{Scope: types.AgencyScope("a1")},
			setupMocks:     func(s *MockStorageInterface) {},
			expectedReason: ReasonUnauthenticated,
		},
		{
			name: "caller without store record",
			rc:   types.RequestContext{Caller: caller, Scope: types.AgencyScope("a1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(nil, notFound)
			},
			expectedReason: ReasonNotProvisioned,
		},
		{
			name: "store failure is an error",
			rc:   types.RequestContext{Caller: caller, Scope: types.AgencyScope("a1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(nil, errors.New("connection refused"))
			},
			expectedErr: true,
		},
		{
			name: "caller email is looked up normalized",
			rc:   types.RequestContext{Caller: &types.Identity{ID: "u1", Email: " Bob@X.com"}, Scope: types.AgencyScope("a1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyAdmin, "a1"), nil)
			},
			expectedAllow: true,
		},
		{
			name: "owner of the agency",
			rc:   types.RequestContext{Caller: caller, Scope: types.AgencyScope("a1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyOwner, "a1"), nil)
			},
			expectedAllow: true,
		},
		{
			name: "admin of another agency",
			rc:   types.RequestContext{Caller: caller, Scope: types.AgencyScope("a2")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyAdmin, "a1"), nil)
			},
			expectedReason: ReasonInsufficientRole,
		},
		{
			name: "subaccount user on agency scope",
			rc:   types.RequestContext{Caller: caller, Scope: types.AgencyScope("a1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleSubAccountUser, "a1"), nil)
			},
			expectedReason: ReasonInsufficientRole,
		},
		{
			name: "user detached from every agency",
			rc:   types.RequestContext{Caller: caller, Scope: types.AgencyScope("")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyOwner, ""), nil)
			},
			expectedReason: ReasonInsufficientRole,
		},
		{
			name: "admin on own subaccount",
			rc:   types.RequestContext{Caller: caller, Scope: types.SubAccountScope("a1", "s1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyAdmin, "a1"), nil)
				s.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(sub, nil)
			},
			expectedAllow: true,
		},
		{
			name: "owner on foreign subaccount",
			rc:   types.RequestContext{Caller: caller, Scope: types.SubAccountScope("a2", "s9")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyOwner, "a1"), nil)
			},
			expectedReason: ReasonInsufficientRole,
		},
		{
			name: "subaccount under a different parent",
			rc:   types.RequestContext{Caller: caller, Scope: types.SubAccountScope("a1", "s2")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyOwner, "a1"), nil)
				s.EXPECT().GetSubAccountByID(gomock.Any(), "s2").Return(&types.SubAccount{ID: "s2", AgencyID: "a2"}, nil)
			},
			expectedReason: ReasonUnknownTenant,
		},
		{
			name: "missing subaccount fails closed",
			rc:   types.RequestContext{Caller: caller, Scope: types.SubAccountScope("a1", "gone")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleAgencyOwner, "a1"), nil)
				s.EXPECT().GetSubAccountByID(gomock.Any(), "gone").Return(nil, notFound)
			},
			expectedReason: ReasonUnknownTenant,
		},
		{
			name: "subaccount user with grant",
			rc:   types.RequestContext{Caller: caller, Scope: types.SubAccountScope("a1", "s1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleSubAccountUser, "a1"), nil)
				s.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(sub, nil)
				s.EXPECT().GetEffectivePermission(gomock.Any(), "bob@x.com", "s1").Return(&types.Permission{Access: true}, nil)
			},
			expectedAllow: true,
		},
		{
			name: "subaccount guest without grant",
			rc:   types.RequestContext{Caller: caller, Scope: types.SubAccountScope("a1", "s1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleSubAccountGuest, "a1"), nil)
				s.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(sub, nil)
				s.EXPECT().GetEffectivePermission(gomock.Any(), "bob@x.com", "s1").Return(nil, notFound)
			},
			expectedReason: ReasonNoGrant,
		},
		{
			name: "subaccount user with revoked grant",
			rc:   types.RequestContext{Caller: caller, Scope: types.SubAccountScope("a1", "s1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(types.RoleSubAccountUser, "a1"), nil)
				s.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(sub, nil)
				s.EXPECT().GetEffectivePermission(gomock.Any(), "bob@x.com", "s1").Return(&types.Permission{Access: false}, nil)
			},
			expectedReason: ReasonNoGrant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tt.setupMocks(mockStorage)

			d, err := s.Authorize(context.Background(), tt.rc)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAllow, d.Allowed)
			assert.Equal(t, tt.expectedReason, d.Reason)
		})
	}
}

func TestService_AuthorizeRoleAllowIgnoresGrants(t *testing.T) {
	caller := &types.Identity{ID: "u1", Email: "bob@x.com"}

	for _, role := range []types.Role{types.RoleAgencyOwner, types.RoleAgencyAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			s, mockStorage := newTestService(t)

			// GetEffectivePermission is not expected: revoking every grant
			// cannot change the outcome.
			mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(user(role, "a1"), nil)
			mockStorage.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(&types.SubAccount{ID: "s1", AgencyID: "a1"}, nil)

			d, err := s.Authorize(context.Background(), types.RequestContext{Caller: caller, Scope: types.SubAccountScope("a1", "s1")})
			require.NoError(t, err)
			assert.True(t, d.Allowed)
		})
	}
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, allow(nil).Err())
	assert.ErrorIs(t, deny(ReasonUnauthenticated, nil).Err(), ErrUnauthenticated)
	assert.ErrorIs(t, deny(ReasonNotProvisioned, nil).Err(), ErrNotProvisioned)
	assert.ErrorIs(t, deny(ReasonNoGrant, nil).Err(), ErrNotAuthorized)
	assert.ErrorIs(t, deny(ReasonUnknownTenant, nil).Err(), ErrNotAuthorized)
}

func TestService_ScopeForSubAccount(t *testing.T) {
	s, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(&types.SubAccount{ID: "s1", AgencyID: "a1"}, nil)
	mockStorage.EXPECT().GetSubAccountByID(gomock.Any(), "gone").Return(nil, notFound)

	scope, err := s.ScopeForSubAccount(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, types.SubAccountScope("a1", "s1"), scope)

	scope, err = s.ScopeForSubAccount(context.Background(), "gone")
	require.NoError(t, err)
	assert.Equal(t, types.SubAccountScope("", "gone"), scope)
}

func TestService_VisibleSubAccounts(t *testing.T) {
	subs := []*types.SubAccount{{ID: "s1", AgencyID: "a1"}, {ID: "s2", AgencyID: "a1"}, {ID: "s3", AgencyID: "a1"}}

	tests := []struct {
		name       string
		user       *types.User
		setupMocks func(*MockStorageInterface)
		expected   []string
	}{
		{
			name: "agency admin sees every subaccount",
			user: user(types.RoleAgencyAdmin, "a1"),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListSubAccountsByAgencyID(gomock.Any(), "a1").Return(subs, nil)
			},
			expected: []string{"s1", "s2", "s3"},
		},
		{
			name: "subaccount user sees granted ones",
			user: user(types.RoleSubAccountUser, "a1"),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListSubAccountsByAgencyID(gomock.Any(), "a1").Return(subs, nil)
				s.EXPECT().ListEffectivePermissions(gomock.Any(), "bob@x.com", "a1").Return([]*types.Permission{
					{SubAccountID: "s1", Access: true},
					{SubAccountID: "s2", Access: false},
				}, nil)
			},
			expected: []string{"s1"},
		},
		{
			name:       "user without agency",
			user:       user(types.RoleSubAccountUser, ""),
			setupMocks: func(s *MockStorageInterface) {},
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tt.setupMocks(mockStorage)

			visible, err := s.VisibleSubAccounts(context.Background(), tt.user)
			require.NoError(t, err)

			ids := make([]string, 0, len(visible))
			for _, sub := range visible {
				ids = append(ids, sub.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
