// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

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

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Authorize evaluates the caller against the tenant scope of rc. Decisions
// only read the Tenant Store. Store failures are returned as errors, never
// as a decision.
func (s *Service) Authorize(ctx context.Context, rc types.RequestContext) (*Decision, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Authorize")
	defer span.End()

	d, err := s.authorize(ctx, rc)
	if err != nil {
		return nil, err
	}

	if !d.Allowed {
		actor := "anonymous"
		if rc.Caller != nil {
			actor = rc.Caller.ID
		}
		s.logger.Security().AuthzFailure(actor, rc.Scope.String(), d.Reason)
		return d, nil
	}

	s.logger.Debugf("access granted to %s on %s", rc.Caller.ID, rc.Scope)
	return d, nil
}

func (s *Service) authorize(ctx context.Context, rc types.RequestContext) (*Decision, error) {
	if rc.CallerEmail() == "" {
		return deny(ReasonUnauthenticated, nil), nil
	}

	user, err := s.storage.GetUserByEmail(ctx, rc.CallerEmail())
	if errors.Is(err, storage.ErrNotFound) {
		return deny(ReasonNotProvisioned, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}

	if user.AgencyID == "" || user.AgencyID != rc.Scope.AgencyID {
		return deny(ReasonInsufficientRole, user), nil
	}

	switch rc.Scope.Kind {
	case types.AgencyScopeKind:
		if user.Role.IsAgencyRole() {
			return allow(user), nil
		}
		return deny(ReasonInsufficientRole, user), nil
	case types.SubAccountScopeKind:
		return s.authorizeSubAccount(ctx, user, rc.Scope)
	}

	return deny(ReasonUnknownTenant, user), nil
}

func (s *Service) authorizeSubAccount(ctx context.Context, user *types.User, scope types.Scope) (*Decision, error) {
	sub, err := s.storage.GetSubAccountByID(ctx, scope.SubAccountID)
	if errors.Is(err, storage.ErrNotFound) {
		return deny(ReasonUnknownTenant, user), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subaccount: %w", err)
	}

	if sub.AgencyID != scope.AgencyID {
		s.logger.Errorf("subaccount %s is owned by %s, not %s", sub.ID, sub.AgencyID, scope.AgencyID)
		return deny(ReasonUnknownTenant, user), nil
	}

	if user.Role.IsAgencyRole() {
		return allow(user), nil
	}

	p, err := s.storage.GetEffectivePermission(ctx, user.Email, sub.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return deny(ReasonNoGrant, user), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load permission: %w", err)
	}

	if !p.Access {
		return deny(ReasonNoGrant, user), nil
	}

	return allow(user), nil
}

// ScopeForSubAccount builds the scope of a route that only carries the
// subaccount id. An unknown subaccount yields a scope with no agency, which
// Authorize always denies.
func (s *Service) ScopeForSubAccount(ctx context.Context, subAccountID string) (types.Scope, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ScopeForSubAccount")
	defer span.End()

	sub, err := s.storage.GetSubAccountByID(ctx, subAccountID)
	if errors.Is(err, storage.ErrNotFound) {
		return types.SubAccountScope("", subAccountID), nil
	}
	if err != nil {
		return types.Scope{}, err
	}

	return types.SubAccountScope(sub.AgencyID, sub.ID), nil
}

// VisibleSubAccounts lists the subaccounts the user can open: all of the
// agency for agency roles, the effectively granted ones otherwise.
func (s *Service) VisibleSubAccounts(ctx context.Context, user *types.User) ([]*types.SubAccount, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.VisibleSubAccounts")
	defer span.End()

	if user == nil || user.AgencyID == "" {
		return []*types.SubAccount{}, nil
	}

	subs, err := s.storage.ListSubAccountsByAgencyID(ctx, user.AgencyID)
	if err != nil {
		return nil, err
	}

	if user.Role.IsAgencyRole() {
		return subs, nil
	}

	perms, err := s.storage.ListEffectivePermissions(ctx, user.Email, user.AgencyID)
	if err != nil {
		return nil, err
	}

	granted := make(map[string]bool, len(perms))
	for _, p := range perms {
		granted[p.SubAccountID] = p.Access
	}

	visible := make([]*types.SubAccount, 0, len(perms))
	for _, sub := range subs {
		if granted[sub.ID] {
			visible = append(visible, sub)
		}
	}

	return visible, nil
}
