// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
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

//go:generate mockgen -build_flags=--mod=mod -package agency -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage     *MockStorageInterface
	tx          *MockTxInterface
	access      *MockAccessInterface
	invitations *MockInvitationsInterface
	notifier    *MockNotifierInterface
	rolesync    *MockRoleSyncInterface
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
		rolesync:    NewMockRoleSyncInterface(ctrl),
		authz:       NewMockAuthorizerInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()

	logger := logging.NewNoopLogger()
	s := NewService(
		m.storage, m.tx, m.access, m.invitations, m.notifier, m.rolesync, m.authz,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("agency-service", logger), logger,
	)

	return s, m
}

var (
	alice   = &types.Identity{ID: "u0", Email: "alice@x.com", FirstName: "Alice"}
	inA1    = types.RequestContext{Caller: alice, Scope: types.AgencyScope("a1")}
	owner   = &types.User{ID: "u0", Email: "alice@x.com", Role: types.RoleAgencyOwner, AgencyID: "a1"}
	admin   = &types.User{ID: "u0", Email: "alice@x.com", Role: types.RoleAgencyAdmin, AgencyID: "a1"}
	ownerOK = &access.Decision{Allowed: true, User: owner}
	adminOK = &access.Decision{Allowed: true, User: admin}
)

func validInput() *AgencyInput {
	return &AgencyInput{Name: "Acme", CompanyEmail: "hello@acme.com", CompanyPhone: "+1 555", Goal: 5}
}

func TestService_Entry(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks)
		want       *Entry
		wantErr    error
	}{
		{
			name: "anonymous",
			setupMocks: func(m *mocks) {
				m.invitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("", access.ErrUnauthenticated)
			},
			wantErr: access.ErrUnauthenticated,
		},
		{
			name: "no agency yet",
			setupMocks: func(m *mocks) {
				m.invitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("", nil)
			},
			want: &Entry{Onboarding: true},
		},
		{
			name: "subaccount user",
			setupMocks: func(m *mocks) {
				m.invitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("a1", nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "alice@x.com").Return(&types.User{Role: types.RoleSubAccountGuest}, nil)
			},
			want: &Entry{User: &types.User{Role: types.RoleSubAccountGuest}, AgencyID: "a1", Redirect: "/subaccount"},
		},
		{
			name: "agency admin",
			setupMocks: func(m *mocks) {
				m.invitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("a1", nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "alice@x.com").Return(admin, nil)
			},
			want: &Entry{User: admin, AgencyID: "a1", Redirect: "/agency/a1"},
		},
		{
			name: "unknown role",
			setupMocks: func(m *mocks) {
				m.invitations.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return("a1", nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "alice@x.com").Return(&types.User{Role: "ROOT"}, nil)
			},
			wantErr: access.ErrNotAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.setupMocks(m)

			got, err := s.Entry(context.Background(), types.RequestContext{Caller: alice})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_CreateAgency(t *testing.T) {
	tests := []struct {
		name       string
		rc         types.RequestContext
		input      *AgencyInput
		setupMocks func(*mocks)
		wantErr    error
	}{
		{
			name:    "anonymous",
			rc:      types.RequestContext{},
			input:   validInput(),
			wantErr: access.ErrUnauthenticated,
		},
		{
			name:    "invalid input",
			rc:      types.RequestContext{Caller: alice},
			input:   &AgencyInput{Name: "A", CompanyEmail: "nope"},
			wantErr: validator.ValidationErrors{},
		},
		{
			name:  "caller already in an agency",
			rc:    types.RequestContext{Caller: alice},
			input: validInput(),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "alice@x.com").Return(owner, nil)
			},
			wantErr: ErrAgencyExists,
		},
		{
			name:  "owner is provisioned with the default sidebar",
			rc:    types.RequestContext{Caller: alice},
			input: validInput(),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "alice@x.com").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateAgency(gomock.Any(), &types.Agency{
					Name: "Acme", CompanyEmail: "hello@acme.com", CompanyPhone: "+1 555", Goal: 5,
				}).Return(&types.Agency{ID: "a1", Name: "Acme"}, nil)
				m.storage.EXPECT().UpsertUser(gomock.Any(), &types.User{
					ID: "u0", Name: "Alice", Email: "alice@x.com", Role: types.RoleAgencyOwner, AgencyID: "a1",
				}).Return(owner, nil)
				m.storage.EXPECT().CreateSidebarOptions(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, options []*types.SidebarOption) error {
						assert.Len(t, options, 6)
						assert.Equal(t, "/agency/a1", options[0].Link)
						for _, o := range options {
							assert.Equal(t, "a1", o.AgencyID)
							assert.Empty(t, o.SubAccountID)
						}
						return nil
					},
				)
				m.storage.EXPECT().UpsertRoleSyncTask(gomock.Any(), "u0", types.RoleAgencyOwner).Return(nil)
				m.rolesync.EXPECT().Sync(gomock.Any(), "u0", types.RoleAgencyOwner).Return(errors.New("kratos down"))
				m.authz.EXPECT().AssignAgencyRole(gomock.Any(), "a1", "u0", types.RoleAgencyOwner).Return(nil)
				m.notifier.EXPECT().Record(gomock.Any(), types.RequestContext{Caller: alice, Scope: types.AgencyScope("a1")}, "created the agency Acme")
			},
		},
		{
			name:  "store failure rolls back",
			rc:    types.RequestContext{Caller: alice},
			input: validInput(),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "alice@x.com").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateAgency(gomock.Any(), gomock.Any()).Return(&types.Agency{ID: "a1"}, nil)
				m.storage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			wantErr: storage.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			got, err := s.CreateAgency(context.Background(), tt.rc, tt.input)
			if tt.wantErr != nil {
				var verr validator.ValidationErrors
				if errors.As(tt.wantErr, &verr) {
					assert.ErrorAs(t, err, &verr)
					return
				}
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "a1", got.ID)
		})
	}
}

func TestService_UpdateAgency(t *testing.T) {
	s, m := newTestService(t)

	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(adminOK, nil)
	m.storage.EXPECT().GetAgencyByID(gomock.Any(), "a1").Return(&types.Agency{ID: "a1", Name: "Old"}, nil)
	m.storage.EXPECT().UpdateAgency(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *types.Agency) (*types.Agency, error) {
			assert.Equal(t, "a1", a.ID)
			assert.Equal(t, "Acme", a.Name)
			return a, nil
		},
	)
	m.notifier.EXPECT().Record(gomock.Any(), inA1, "updated the agency details")

	got, err := s.UpdateAgency(context.Background(), inA1, validInput())
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
}

func TestService_DeleteAgency(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks)
		wantErr    error
	}{
		{
			name: "owner deletes",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().DeleteAgency(gomock.Any(), "a1").Return(nil)
				m.authz.EXPECT().DeleteAgency(gomock.Any(), "a1").Return(errors.New("fga down"))
			},
		},
		{
			name: "admin is refused",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(adminOK, nil)
			},
			wantErr: ErrOwnerRequired,
		},
		{
			name: "other agency",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(&access.Decision{Reason: access.ReasonInsufficientRole}, nil)
			},
			wantErr: access.ErrNotAuthorized,
		},
		{
			name: "already gone",
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().DeleteAgency(gomock.Any(), "a1").Return(storage.ErrNotFound)
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.setupMocks(m)

			err := s.DeleteAgency(context.Background(), inA1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_GetAgency(t *testing.T) {
	s, m := newTestService(t)

	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(adminOK, nil)
	m.storage.EXPECT().GetAgencyByID(gomock.Any(), "a1").Return(&types.Agency{ID: "a1"}, nil)
	m.storage.EXPECT().ListSidebarOptionsByAgencyID(gomock.Any(), "a1").Return([]*types.SidebarOption{{Name: "Team"}}, nil)
	m.storage.EXPECT().ListNotifications(gomock.Any(), "a1", "", int64(0), int64(detailsNotifications)).Return([]*types.Notification{{ID: "n1"}}, nil)

	got, err := s.GetAgency(context.Background(), inA1)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.Agency.ID)
	assert.Len(t, got.Sidebar, 1)
	assert.Len(t, got.Notifications, 1)

	s, m = newTestService(t)
	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(adminOK, nil)
	m.storage.EXPECT().GetAgencyByID(gomock.Any(), "a1").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().ListSidebarOptionsByAgencyID(gomock.Any(), "a1").Return(nil, nil).AnyTimes()
	m.storage.EXPECT().ListNotifications(gomock.Any(), "a1", "", gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err = s.GetAgency(context.Background(), inA1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestService_UpdateMemberRole(t *testing.T) {
	bob := &types.User{ID: "u1", Email: "bob@x.com", Role: types.RoleSubAccountUser, AgencyID: "a1"}

	tests := []struct {
		name       string
		role       types.Role
		setupMocks func(*mocks)
		wantErr    error
	}{
		{
			name:    "owner cannot be assigned",
			role:    types.RoleAgencyOwner,
			wantErr: ErrInvalidRole,
		},
		{
			name: "promote to admin",
			role: types.RoleAgencyAdmin,
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(ownerOK, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u1").Return(bob, nil)
				m.storage.EXPECT().UpdateUserRole(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(&types.User{ID: "u1", Role: types.RoleAgencyAdmin}, nil)
				m.storage.EXPECT().UpsertRoleSyncTask(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(nil)
				m.rolesync.EXPECT().Sync(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(nil)
				m.authz.EXPECT().AssignAgencyRole(gomock.Any(), "a1", "u1", types.RoleAgencyAdmin).Return(nil)
				m.notifier.EXPECT().Record(gomock.Any(), inA1, "changed the role of bob@x.com to AGENCY_ADMIN")
			},
		},
		{
			name: "owner cannot be demoted",
			role: types.RoleAgencyAdmin,
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(adminOK, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Role: types.RoleAgencyOwner, AgencyID: "a1"}, nil)
			},
			wantErr: ErrOwnerImmutable,
		},
		{
			name: "member of another agency",
			role: types.RoleSubAccountGuest,
			setupMocks: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(adminOK, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", AgencyID: "a2"}, nil)
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

			_, err := s.UpdateMemberRole(context.Background(), inA1, "u1", tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_RemoveMember(t *testing.T) {
	s, m := newTestService(t)

	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(adminOK, nil)
	m.storage.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Email: "bob@x.com", Role: types.RoleAgencyAdmin, AgencyID: "a1"}, nil)
	m.storage.EXPECT().DetachUser(gomock.Any(), "u1").Return(nil)
	m.authz.EXPECT().RemoveAgencyMember(gomock.Any(), "a1", "u1").Return(nil)
	m.notifier.EXPECT().Record(gomock.Any(), inA1, "removed bob@x.com from the team")

	require.NoError(t, s.RemoveMember(context.Background(), inA1, "u1"))
}

func TestService_ListTeam(t *testing.T) {
	s, m := newTestService(t)

	m.access.EXPECT().Authorize(gomock.Any(), inA1).Return(adminOK, nil)
	m.storage.EXPECT().ListUsersByAgencyID(gomock.Any(), "a1").Return([]*types.User{owner}, nil)

	got, err := s.ListTeam(context.Background(), inA1)
	require.NoError(t, err)
	assert.Equal(t, []*types.User{owner}, got)

	_, err = s.ListTeam(context.Background(), types.RequestContext{Caller: alice, Scope: types.SubAccountScope("a1", "s1")})
	assert.ErrorIs(t, err, access.ErrNotAuthorized)
}
