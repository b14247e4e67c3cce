// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

const (
	AgencyClaim = "agency_id"
	RoleClaim   = "role"
)

type Service struct {
	storage     StorageInterface
	invitations InvitationsInterface
	tracer      tracing.TracingInterface
	monitor     monitoring.MonitorInterface
	logger      logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	invitations InvitationsInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		invitations: invitations,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// HandleRegistration provisions a freshly registered identity that has a
// pending invitation and returns its agency, "" when there is none.
func (s *Service) HandleRegistration(ctx context.Context, identity *types.Identity) (string, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" || identity.Email == "" {
		return "", fmt.Errorf("identity ID or email is empty")
	}

	identity.Email = types.NormalizeEmail(identity.Email)
	s.logger.Debugf("Handling registration for identity %s with email %s", identity.ID, identity.Email)

	agencyID, err := s.invitations.Reconcile(ctx, types.RequestContext{Caller: identity})
	if err != nil {
		return "", fmt.Errorf("failed to reconcile registration: %w", err)
	}

	if agencyID != "" {
		s.logger.Infof("Registered identity %s joined agency %s", identity.ID, agencyID)
	}

	return agencyID, nil
}

// HandleTokenHook adds the agency membership of the session subject to the
// tokens Hydra is about to issue. Subjects without membership get no claims.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req.Session == nil || req.Session.DefaultSession == nil || req.Session.DefaultSession.Subject == "" {
		return nil, errors.New("no subject in token hook session")
	}

	subject := req.Session.DefaultSession.Subject
	s.logger.Debugf("Resolving membership of subject %s", subject)

	resp := new(TokenHookResponse)

	user, err := s.storage.GetUserByID(ctx, subject)
	if errors.Is(err, storage.ErrNotFound) {
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user.AgencyID == "" {
		return resp, nil
	}

	claims := map[string]interface{}{
		AgencyClaim: user.AgencyID,
		RoleClaim:   user.Role.String(),
	}
	resp.Session.IDToken = claims
	resp.Session.AccessToken = claims

	return resp, nil
}
