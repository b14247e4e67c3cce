// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

var (
	ErrInvalidRole          = errors.New("role cannot be granted through an invitation")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvitationPending    = errors.New("a pending invitation already exists for this email")
	ErrInvitationNotPending = errors.New("invitation is not pending")
	ErrAlreadyMember        = errors.New("user already belongs to an agency")
	ErrRateLimited          = errors.New("too many invitations, retry later")
)

// Invite is a created invitation together with the recovery link the invitee
// uses to set credentials.
type Invite struct {
	Invitation *types.Invitation `json:"invitation"`
	Link       string            `json:"link"`
	Code       string            `json:"code"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	tx       TxInterface
	access   AccessInterface
	notifier NotifierInterface
	rolesync RoleSyncInterface
	authz    AuthorizerInterface
	kratos   KratosClientInterface
	limiter  LimiterInterface

	invitationLifetime string
	validate           *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	access AccessInterface,
	notifier NotifierInterface,
	rolesync RoleSyncInterface,
	authz AuthorizerInterface,
	kratos KratosClientInterface,
	limiter LimiterInterface,
	invitationLifetime string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            storage,
		tx:                 tx,
		access:             access,
		notifier:           notifier,
		rolesync:           rolesync,
		authz:              authz,
		kratos:             kratos,
		limiter:            limiter,
		invitationLifetime: invitationLifetime,
		validate:           validator.New(validator.WithRequiredStructEnabled()),
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

// Reconcile turns a pending invitation of the caller into agency membership
// and returns the agency the caller belongs to, "" when there is none.
// Repeating it is safe: the store write happens first and the invitation is
// only accepted last, so a retry resumes where a failed call stopped.
func (s *Service) Reconcile(ctx context.Context, rc types.RequestContext) (string, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Reconcile")
	defer span.End()

	if rc.CallerEmail() == "" {
		return "", access.ErrUnauthenticated
	}

	inv, err := s.storage.GetPendingInvitationByEmail(ctx, rc.CallerEmail())
	if errors.Is(err, storage.ErrNotFound) {
		return s.existingAgency(ctx, rc.CallerEmail())
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up invitation: %w", err)
	}

	if inv.Role == types.RoleAgencyOwner {
		s.logger.Security().PrivilegeEscalationBlocked(rc.Caller.ID, "agency:"+inv.AgencyID, inv.Role.String())
		return "", nil
	}

	var (
		user    *types.User
		created bool
	)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		u, c, err := s.storage.CreateTeamUser(ctx, &types.User{
			ID:        rc.Caller.ID,
			Name:      rc.Caller.Name(),
			Email:     rc.CallerEmail(),
			AvatarURL: rc.Caller.ImageURL,
			Role:      inv.Role,
			AgencyID:  inv.AgencyID,
		})
		if err != nil {
			return err
		}

		user, created = u, c
		if !created {
			return nil
		}

		return s.storage.UpsertRoleSyncTask(ctx, u.ID, u.Role)
	})
	if err != nil {
		return "", fmt.Errorf("failed to provision invited user: %w", err)
	}

	if user.AgencyID != inv.AgencyID {
		s.logger.Warnf("invitation %s left pending, %s already belongs to agency %s", inv.ID, user.ID, user.AgencyID)
		return user.AgencyID, nil
	}

	if created {
		s.notifier.Record(ctx, rc.WithScope(types.AgencyScope(inv.AgencyID)), "has accepted the invitation")
	}

	if err := s.rolesync.Sync(ctx, user.ID, user.Role); err != nil {
		s.logger.Errorf("role of %s committed but not propagated: %v", user.ID, err)
	}

	if err := s.authz.AssignAgencyRole(ctx, inv.AgencyID, user.ID, user.Role); err != nil {
		s.logger.Errorf("failed to mirror agency role of %s: %v", user.ID, err)
	}

	accepted, err := s.storage.AcceptInvitation(ctx, inv.ID)
	if err != nil {
		return "", fmt.Errorf("failed to accept invitation: %w", err)
	}
	if !accepted {
		s.logger.Debugf("invitation %s already reconciled", inv.ID)
	}

	return inv.AgencyID, nil
}

func (s *Service) existingAgency(ctx context.Context, email string) (string, error) {
	u, err := s.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	return u.AgencyID, nil
}

// CreateInvitation invites email into the agency of rc. The identity is
// provisioned on the identity provider and a recovery link is returned.
func (s *Service) CreateInvitation(ctx context.Context, rc types.RequestContext, email string, role types.Role) (*Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CreateInvitation")
	defer span.End()

	email = types.NormalizeEmail(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	if !role.Valid() || role == types.RoleAgencyOwner {
		return nil, ErrInvalidRole
	}

	if err := s.authorize(ctx, rc); err != nil {
		return nil, err
	}

	if s.limiter != nil && !s.limiter.Allow(rc.Scope.AgencyID) {
		return nil, ErrRateLimited
	}

	existing, err := s.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil && existing.AgencyID != "":
		return nil, ErrAlreadyMember
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	invite := new(Invite)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		inv, err := s.storage.CreateInvitation(ctx, &types.Invitation{
			Email:    email,
			AgencyID: rc.Scope.AgencyID,
			Role:     role,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return ErrInvitationPending
		}
		if err != nil {
			return err
		}
		invite.Invitation = inv

		identityID, err := s.ensureIdentity(ctx, email)
		if err != nil {
			return err
		}

		invite.Link, invite.Code, err = s.kratos.CreateRecoveryLink(ctx, identityID, s.invitationLifetime)
		if err != nil {
			return fmt.Errorf("failed to generate invitation link: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(rc.Caller.ID, "invite "+role.String(), "agency:"+rc.Scope.AgencyID)
	s.notifier.Record(ctx, rc, "invited "+email)

	return invite, nil
}

func (s *Service) ensureIdentity(ctx context.Context, email string) (string, error) {
	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to check identity: %w", err)
	}

	if identityID != "" {
		return identityID, nil
	}

	s.logger.Infof("creating identity for invited email %s", email)

	identityID, err = s.kratos.CreateIdentity(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to provision identity: %w", err)
	}

	return identityID, nil
}

func (s *Service) CancelInvitation(ctx context.Context, rc types.RequestContext, id string) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CancelInvitation")
	defer span.End()

	if err := s.authorize(ctx, rc); err != nil {
		return err
	}

	inv, err := s.storage.GetInvitationByID(ctx, id)
	if err != nil {
		return err
	}

	// invitations of other agencies are reported as missing
	if inv.AgencyID != rc.Scope.AgencyID {
		return fmt.Errorf("invitation %s: %w", id, storage.ErrNotFound)
	}

	cancelled, err := s.storage.CancelInvitation(ctx, id)
	if err != nil {
		return err
	}
	if !cancelled {
		return ErrInvitationNotPending
	}

	s.logger.Security().AdminAction(rc.Caller.ID, "cancel invitation", "agency:"+inv.AgencyID)
	s.notifier.Record(ctx, rc, "cancelled the invitation of "+inv.Email)

	return nil
}

func (s *Service) ListInvitations(ctx context.Context, rc types.RequestContext) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListInvitations")
	defer span.End()

	if err := s.authorize(ctx, rc); err != nil {
		return nil, err
	}

	return s.storage.ListInvitationsByAgencyID(ctx, rc.Scope.AgencyID)
}

func (s *Service) authorize(ctx context.Context, rc types.RequestContext) error {
	if rc.Scope.Kind != types.AgencyScopeKind {
		return access.ErrNotAuthorized
	}

	d, err := s.access.Authorize(ctx, rc)
	if err != nil {
		return err
	}

	return d.Err()
}
