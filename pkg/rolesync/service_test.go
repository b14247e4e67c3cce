// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rolesync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package rolesync -destination ./mock_interfaces.go -source=./interfaces.go

type gaugeMonitor struct {
	*monitoring.NoopMonitor
	pending float64
}

func (g *gaugeMonitor) SetRoleSyncPending(v float64) {
	g.pending = v
}

var fastConfig = Config{
	BatchSize:       10,
	MaxElapsedTime:  20 * time.Millisecond,
	InitialInterval: time.Millisecond,
}

func newTestService(t *testing.T, monitor monitoring.MonitorInterface) (*Service, *MockStorageInterface, *MockKratosClientInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockKratos := NewMockKratosClientInterface(ctrl)

	logger := logging.NewNoopLogger()
	if monitor == nil {
		monitor = monitoring.NewNoopMonitor("agency-service", logger)
	}

	return NewService(mockStorage, mockKratos, fastConfig, tracing.NewNoopTracer(), monitor, logger), mockStorage, mockKratos
}

func TestService_Sync(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockKratosClientInterface)
		expectedErr error
	}{
		{
			name: "confirmed write clears the marker",
			setupMocks: func(s *MockStorageInterface, k *MockKratosClientInterface) {
				k.EXPECT().SetUserRole(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(nil)
				s.EXPECT().DeleteRoleSyncTask(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(nil)
			},
		},
		{
			name: "transient failure is retried",
			setupMocks: func(s *MockStorageInterface, k *MockKratosClientInterface) {
				gomock.InOrder(
					k.EXPECT().SetUserRole(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(errors.New("503")),
					k.EXPECT().SetUserRole(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(nil),
				)
				s.EXPECT().DeleteRoleSyncTask(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(nil)
			},
		},
		{
			name: "persistent failure keeps the marker",
			setupMocks: func(s *MockStorageInterface, k *MockKratosClientInterface) {
				k.EXPECT().SetUserRole(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(errors.New("503")).MinTimes(1)
				s.EXPECT().MarkRoleSyncFailed(gomock.Any(), "u1", gomock.Any()).Return(nil)
			},
			expectedErr: ErrRoleSyncPending,
		},
		{
			name: "marker cleanup failure does not fail the sync",
			setupMocks: func(s *MockStorageInterface, k *MockKratosClientInterface) {
				k.EXPECT().SetUserRole(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(nil)
				s.EXPECT().DeleteRoleSyncTask(gomock.Any(), "u1", types.RoleAgencyAdmin).Return(errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockStorage, mockKratos := newTestService(t, nil)
			tt.setupMocks(mockStorage, mockKratos)

			err := s.Sync(context.Background(), "u1", types.RoleAgencyAdmin)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Reconcile(t *testing.T) {
	monitor := &gaugeMonitor{NoopMonitor: monitoring.NewNoopMonitor("agency-service", logging.NewNoopLogger())}
	s, mockStorage, mockKratos := newTestService(t, monitor)

	tasks := []*types.RoleSyncTask{
		{UserID: "u1", Role: types.RoleSubAccountUser},
		{UserID: "gone", Role: types.RoleAgencyAdmin},
		{UserID: "u2", Role: types.RoleSubAccountUser},
	}

	mockStorage.EXPECT().ListRoleSyncTasks(gomock.Any(), uint64(10)).Return(tasks, nil)

	// u1 still holds the marker role
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Role: types.RoleSubAccountUser}, nil)
	mockKratos.EXPECT().SetUserRole(gomock.Any(), "u1", types.RoleSubAccountUser).Return(nil)
	mockStorage.EXPECT().DeleteRoleSyncTask(gomock.Any(), "u1", types.RoleSubAccountUser).Return(nil)

	// the user was deleted since
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "gone").Return(nil, fmt.Errorf("x: %w", storage.ErrNotFound))
	mockStorage.EXPECT().DeleteRoleSyncTask(gomock.Any(), "gone", types.RoleAgencyAdmin).Return(nil)

	// u2 was promoted after the marker was written, the store wins
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "u2").Return(&types.User{ID: "u2", Role: types.RoleAgencyAdmin}, nil)
	mockStorage.EXPECT().UpsertRoleSyncTask(gomock.Any(), "u2", types.RoleAgencyAdmin).Return(nil)
	mockKratos.EXPECT().SetUserRole(gomock.Any(), "u2", types.RoleAgencyAdmin).Return(nil)
	mockStorage.EXPECT().DeleteRoleSyncTask(gomock.Any(), "u2", types.RoleAgencyAdmin).Return(nil)

	mockStorage.EXPECT().CountRoleSyncTasks(gomock.Any()).Return(0, nil)

	n, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, float64(0), monitor.pending)
}

func TestService_ReconcileListFailure(t *testing.T) {
	s, mockStorage, _ := newTestService(t, nil)

	mockStorage.EXPECT().ListRoleSyncTasks(gomock.Any(), uint64(10)).Return(nil, errors.New("connection refused"))

	_, err := s.Reconcile(context.Background())
	assert.Error(t, err)
}
