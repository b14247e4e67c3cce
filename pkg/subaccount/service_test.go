// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subaccount

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

//go:generate mockgen -build_flags=--mod=mod -package subaccount -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage     *MockStorageInterface
	tx          *MockTxInterface
	access      *MockAccessInterface
	invitations *MockInvitationsInterface
	notifier    *MockNotifierInterface
	authz       *MockAuthorizerInterface
}

func newTestService(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		storage:     NewMockStorageInterface(ctrl),
		tx:          NewMockTxInterface(ctrl),
		access:      NewMockAccessInterface(ctrl),
		invitations: NewMockInvitationsInterface(ctrl),
		notifier:    NewMockNotifierInterface(ctrl),
		authz:       NewMockAuthorizerInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()

	logger := logging.NewNoopLogger()
	s := NewService(
		m.storage, m.tx, m.access, m.invitations, m.notifier, m.authz,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("agency-service", logger), logger,
	)

	return s, m
}

var (
	alice   = &types.Identity{ID: "u0", Email: "alice@x.com"}
	inA1    = types.RequestContext{Caller: alice, Scope: types.AgencyScope("a1")}
	inS1    = types.RequestContext{Caller: alice, Scope: types.SubAccountScope("a1", "s1")}
	owner   = &types.User{ID: "u0", Email: "alice@x.com", Role: types.RoleAgencyOwner, AgencyID: "a1"}
	ownerOK = &access.Decision{Allowed: true, User: owner}
)

func validInput() *SubAccountInput {
	return &SubAccountInput{Name: "Shop", CompanyEmail: "shop@acme.com", CompanyPhone: "1"}
}

func TestService_CreateSubAccount(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks)
		wantErr    error
	}{
		{
			name: "owner gets the first grant",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().ListUsersByAgencyID(gomock.Any(), "a1").Return([]*types.User{
					{ID: "u9", Email: "guest@x.com", Role: types.RoleSubAccountGuest},
					{ID: "u1", Email: "boss@x.com", Role: types.RoleAgencyOwner},
				}, nil)
				m.storage.EXPECT().CreateSubAccount(gomock.Any(), &types.SubAccount{
					AgencyID: "a1", Name: "Shop", CompanyEmail: "shop@acme.com", CompanyPhone: "1",
				}).Return(&types.SubAccount{ID: "s1", AgencyID: "a1", Name: "Shop"}, nil)
				m.storage.EXPECT().CreatePermission(gomock.Any(), &types.Permission{Email: "boss@x.com", SubAccountID: "s1", Access: true}).
					Return(&types.Permission{ID: "p1"}, nil)
				m.storage.EXPECT().CreateSidebarOptions(gomock.Any(), gomock.Len(8)).Return(nil)
				m.authz.EXPECT().SetSubAccountParent(gomock.Any(), "s1", "a1").Return(nil)
				m.notifier.EXPECT().Record(gomock.Any(), inS1, "created the subaccount Shop")
			},
		},
		{
			name: "agency without owner",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().ListUsersByAgencyID(gomock.Any(), "a1").Return([]*types.User{}, nil)
			},
			wantErr: ErrNoOwner,
		},
		{
			name: "subaccount user cannot create",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(&access.Decision{Reason: access.ReasonInsufficientRole}, nil)
			},
			wantErr: access.ErrNotAuthorized,
		},
		{
			name: "permission insert failure",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().ListUsersByAgencyID(gomock.Any(), "a1").Return([]*types.User{owner}, nil)
				m.storage.EXPECT().CreateSubAccount(gomock.Any(), gomock.Any()).Return(&types.SubAccount{ID: "s1", AgencyID: "a1"}, nil)
				m.storage.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			wantErr: storage.ErrForeignKeyViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.setupMocks(m)

			got, err := s.CreateSubAccount(context.Background(), inA1, validInput())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "s1", got.ID)
		})
	}
}

func TestService_GetSubAccount(t *testing.T) {
	tests := []struct {
		name     string
		agency   *types.Agency
		wantLogo string
	}{
		{
			name:     "white label agency brands its subaccounts",
			agency:   &types.Agency{ID: "a1", AgencyLogo: "https://cdn/agency.png", WhiteLabel: true},
			wantLogo: "https://cdn/agency.png",
		},
		{
			name:     "subaccount keeps its own logo",
			agency:   &types.Agency{ID: "a1", AgencyLogo: "https://cdn/agency.png"},
			wantLogo: "https://cdn/shop.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)

			m.access.EXPECT().Authorize(gomock.Any(), inS1).Return(&access.Decision{Allowed: true}, nil)
			m.storage.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(&types.SubAccount{ID: "s1", AgencyID: "a1", SubAccountLogo: "https://cdn/shop.png"}, nil)
			m.storage.EXPECT().GetAgencyByID(gomock.Any(), "a1").Return(tt.agency, nil)
			m.storage.EXPECT().ListSidebarOptionsBySubAccountID(gomock.Any(), "s1").Return([]*types.SidebarOption{}, nil)

			got, err := s.GetSubAccount(context.Background(), inS1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLogo, got.Logo)
		})
	}

	s, m := newTestService(t)
	m.access.EXPECT().Authorize(gomock.Any(), inS1).Return(&access.Decision{Reason: access.ReasonNoGrant}, nil)

	_, err := s.GetSubAccount(context.Background(), inS1)
	assert.ErrorIs(t, err, access.ErrNotAuthorized)
}

func TestService_ListSubAccounts(t *testing.T) {
	guest := &types.User{ID: "u1", Email: "bob@x.com", Role: types.RoleSubAccountGuest, AgencyID: "a1"}

	tests := []struct {
		name       string
		setupMocks func(*mocks)
		wantLen    int
		wantErr    error
	}{
		{
			name: "agency role sees everything",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.access.EXPECT().VisibleSubAccounts(gomock.Any(), owner).Return([]*types.SubAccount{{ID: "s1"}, {ID: "s2"}}, nil)
			},
			wantLen: 2,
		},
		{
			name: "subaccount role sees its grants",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(&access.Decision{Reason: access.ReasonInsufficientRole, User: guest}, nil)
				m.access.EXPECT().VisibleSubAccounts(gomock.Any(), guest).Return([]*types.SubAccount{{ID: "s1"}}, nil)
			},
			wantLen: 1,
		},
		{
			name: "member of another agency",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(&access.Decision{
					Reason: access.ReasonInsufficientRole,
					User:   &types.User{ID: "u1", AgencyID: "a2", Role: types.RoleAgencyOwner},
				}, nil)
			},
			wantErr: access.ErrNotAuthorized,
		},
		{
			name: "not provisioned",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(&access.Decision{Reason: access.ReasonNotProvisioned}, nil)
			},
			wantErr: access.ErrNotProvisioned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.setupMocks(m)

			got, err := s.ListSubAccounts(context.Background(), inA1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Landing(t *testing.T) {
	s, m := newTestService(t)
	m.invitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("a1", nil)
	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
	m.access.EXPECT().VisibleSubAccounts(gomock.Any(), owner).Return([]*types.SubAccount{{ID: "s7"}, {ID: "s8"}}, nil)

	got, err := s.Landing(context.Background(), types.RequestContext{Caller: alice})
	require.NoError(t, err)
	assert.Equal(t, "/subaccount/s7", got)

	s, m = newTestService(t)
	m.invitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("", nil)

	_, err = s.Landing(context.Background(), types.RequestContext{Caller: alice})
	assert.ErrorIs(t, err, access.ErrNotAuthorized)

	s, m = newTestService(t)
	m.invitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("a1", nil)
	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
	m.access.EXPECT().VisibleSubAccounts(gomock.Any(), owner).Return([]*types.SubAccount{}, nil)

	_, err = s.Landing(context.Background(), types.RequestContext{Caller: alice})
	assert.ErrorIs(t, err, access.ErrNotAuthorized)
}

func TestService_SetPermission(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		allow      bool
		setupMocks func(*mocks)
		wantErr    error
	}{
		{
			name:    "invalid email",
			email:   "bob",
			wantErr: ErrInvalidEmail,
		},
		{
			name:  "grant to an existing user is mirrored",
			email: " Bob@X.com ",
			allow: true,
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(&types.SubAccount{ID: "s1", AgencyID: "a1", Name: "Shop"}, nil)
				m.storage.EXPECT().CreatePermission(gomock.Any(), &types.Permission{Email: "bob@x.com", SubAccountID: "s1", Access: true}).
					Return(&types.Permission{ID: "p1", Access: true}, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(&types.User{ID: "u1"}, nil)
				m.authz.EXPECT().SetSubAccountGrant(gomock.Any(), "s1", "u1", true).Return(errors.New("fga down"))
				m.notifier.EXPECT().Record(gomock.Any(), inS1, "granted access to Shop for bob@x.com")
			},
		},
		{
			name:  "revoke for a pre-registered email",
			email: "bob@x.com",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(&types.SubAccount{ID: "s1", AgencyID: "a1", Name: "Shop"}, nil)
				m.storage.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).Return(&types.Permission{ID: "p2"}, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "bob@x.com").Return(nil, storage.ErrNotFound)
				m.notifier.EXPECT().Record(gomock.Any(), inS1, "revoked access to Shop for bob@x.com")
			},
		},
		{
			name:  "subaccount of another agency",
			email: "bob@x.com",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(&types.SubAccount{ID: "s1", AgencyID: "a2"}, nil)
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			_, err := s.SetPermission(context.Background(), inA1, tt.email, "s1", tt.allow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_DeleteSubAccount(t *testing.T) {
	s, m := newTestService(t)

	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
	m.storage.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(&types.SubAccount{ID: "s1", AgencyID: "a1", Name: "Shop"}, nil)
	m.storage.EXPECT().DeleteSubAccount(gomock.Any(), "s1").Return(nil)
	m.authz.EXPECT().DeleteSubAccount(gomock.Any(), "s1").Return(nil)
	m.notifier.EXPECT().Record(gomock.Any(), inA1, "deleted the subaccount Shop")

	require.NoError(t, s.DeleteSubAccount(context.Background(), inS1))

	s, _ = newTestService(t)
	assert.ErrorIs(t, s.DeleteSubAccount(context.Background(), inA1), access.ErrNotAuthorized)
}

func TestService_UpdateSubAccount(t *testing.T) {
	s, m := newTestService(t)

	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
	m.storage.EXPECT().GetSubAccountByID(gomock.Any(), "s1").Return(&types.SubAccount{ID: "s1", AgencyID: "a1"}, nil)
	m.storage.EXPECT().UpdateSubAccount(gomock.Any(), &types.SubAccount{
		ID: "s1", AgencyID: "a1", Name: "Shop", CompanyEmail: "shop@acme.com", CompanyPhone: "1",
	}).Return(&types.SubAccount{ID: "s1", AgencyID: "a1", Name: "Shop"}, nil)
	m.notifier.EXPECT().Record(gomock.Any(), inS1, "updated the subaccount Shop")

	got, err := s.UpdateSubAccount(context.Background(), inS1, validInput())
	require.NoError(t, err)
	assert.Equal(t, "Shop", got.Name)
}

func TestService_ListPermissions(t *testing.T) {
	s, m := newTestService(t)

	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
	m.storage.EXPECT().ListEffectivePermissions(gomock.Any(), "bob@x.com", "a1").Return([]*types.Permission{{ID: "p1"}}, nil)

	got, err := s.ListPermissions(context.Background(), inA1, "BOB@x.com")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
