// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	access  AccessInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, access AccessInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		access:  access,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Record writes "<actor> <description>" against the scope of rc. It never
// fails the caller: every error is logged and dropped.
func (s *Service) Record(ctx context.Context, rc types.RequestContext, description string) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.Record")
	defer span.End()

	if err := s.record(ctx, rc, description); err != nil {
		s.logger.Errorf("notification %q on %s not recorded: %v", description, rc.Scope, err)
	}
}

func (s *Service) record(ctx context.Context, rc types.RequestContext, description string) error {
	if rc.Caller == nil {
		return errors.New("no actor")
	}

	agencyID, subAccountID := rc.Scope.AgencyID, ""
	if rc.Scope.Kind == types.SubAccountScopeKind {
		subAccountID = rc.Scope.SubAccountID
	}

	if agencyID == "" && subAccountID != "" {
		sub, err := s.storage.GetSubAccountByID(ctx, subAccountID)
		if err != nil {
			return fmt.Errorf("failed to resolve agency of subaccount %s: %w", subAccountID, err)
		}
		agencyID = sub.AgencyID
	}

	if agencyID == "" {
		return errors.New("no agency in scope")
	}

	actorID, actorName := rc.Caller.ID, rc.Caller.Name()

	u, err := s.storage.GetUserByEmail(ctx, rc.CallerEmail())
	switch {
	case err == nil:
		actorID = u.ID
		if u.Name != "" {
			actorName = u.Name
		}
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to resolve actor: %w", err)
	}

	_, err = s.storage.CreateNotification(ctx, &types.Notification{
		Message:      actorName + " " + description,
		AgencyID:     agencyID,
		SubAccountID: subAccountID,
		UserID:       actorID,
	})

	return err
}

// List returns the activity of the agency, or of one subaccount when the
// scope is a subaccount, newest first.
func (s *Service) List(ctx context.Context, rc types.RequestContext, page, size int64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.List")
	defer span.End()

	d, err := s.access.Authorize(ctx, rc)
	if err != nil {
		return nil, err
	}
	if !d.Allowed {
		return nil, d.Err()
	}

	subAccountID := ""
	if rc.Scope.Kind == types.SubAccountScopeKind {
		subAccountID = rc.Scope.SubAccountID
	}

	return s.storage.ListNotifications(ctx, rc.Scope.AgencyID, subAccountID, page, size)
}
