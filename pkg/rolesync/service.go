// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rolesync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

// ErrRoleSyncPending means the store role is committed but the identity
// provider has not confirmed it. The marker stays for the reconciler.
var ErrRoleSyncPending = errors.New("role not yet propagated to the identity provider")

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	BatchSize       uint64
	MaxElapsedTime  time.Duration
	InitialInterval time.Duration
}

type Service struct {
	storage StorageInterface
	kratos  KratosClientInterface
	config  Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, kratos KratosClientInterface, config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	if config.BatchSize == 0 {
		config.BatchSize = 50
	}
	if config.MaxElapsedTime == 0 {
		config.MaxElapsedTime = 10 * time.Second
	}
	if config.InitialInterval == 0 {
		config.InitialInterval = backoff.DefaultInitialInterval
	}

	return &Service{
		storage: storage,
		kratos:  kratos,
		config:  config,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Sync pushes role to the identity provider, retrying with exponential
// backoff. The marker is cleared on success and annotated on failure.
func (s *Service) Sync(ctx context.Context, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "rolesync.Service.Sync")
	defer span.End()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.InitialInterval

	_, err := backoff.Retry(
		ctx,
		func() (struct{}, error) {
			return struct{}{}, s.kratos.SetUserRole(ctx, userID, role)
		},
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(s.config.MaxElapsedTime),
	)
	if err != nil {
		s.logger.Security().RoleSyncInconsistency(userID, role.String(), err)

		if merr := s.storage.MarkRoleSyncFailed(ctx, userID, err.Error()); merr != nil {
			s.logger.Errorf("failed to annotate role sync marker for %s: %v", userID, merr)
		}

		return fmt.Errorf("%w: %v", ErrRoleSyncPending, err)
	}

	if err := s.storage.DeleteRoleSyncTask(ctx, userID, role); err != nil {
		// the provider already holds role, the next reconcile pass repeats a
		// harmless write
		s.logger.Errorf("failed to clear role sync marker for %s: %v", userID, err)
	}

	return nil
}

// Reconcile retries a batch of pending markers, oldest first, and returns
// how many were confirmed. The store role is re-read for each marker.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "rolesync.Service.Reconcile")
	defer span.End()

	tasks, err := s.storage.ListRoleSyncTasks(ctx, s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list role sync tasks: %w", err)
	}

	synced := 0
	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}

		ok, err := s.reconcileTask(ctx, task)
		if err != nil {
			s.logger.Warnf("role sync for %s still pending: %v", task.UserID, err)
			continue
		}
		if ok {
			synced++
		}
	}

	s.reportPending(ctx)

	return synced, nil
}

func (s *Service) reconcileTask(ctx context.Context, task *types.RoleSyncTask) (bool, error) {
	user, err := s.storage.GetUserByID(ctx, task.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, s.storage.DeleteRoleSyncTask(ctx, task.UserID, task.Role)
	}
	if err != nil {
		return false, err
	}

	if user.Role != task.Role {
		if err := s.storage.UpsertRoleSyncTask(ctx, user.ID, user.Role); err != nil {
			return false, err
		}
	}

	if err := s.Sync(ctx, user.ID, user.Role); err != nil {
		return false, err
	}

	return true, nil
}

func (s *Service) reportPending(ctx context.Context) {
	gauge, ok := s.monitor.(pendingGauge)
	if !ok {
		return
	}

	n, err := s.storage.CountRoleSyncTasks(ctx)
	if err != nil {
		s.logger.Debugf("failed to count role sync tasks: %v", err)
		return
	}

	gauge.SetRoleSyncPending(float64(n))
}
