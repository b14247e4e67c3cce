// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

const (
	SubAccountPath = "/subaccount"

	detailsNotifications = 20
)

var (
	ErrAgencyExists   = errors.New("caller already belongs to an agency")
	ErrOwnerRequired  = errors.New("only the agency owner can do this")
	ErrOwnerImmutable = errors.New("the agency owner role cannot be changed")
	ErrInvalidRole    = errors.New("role cannot be assigned to a team member")
)

// AgencyInput holds the editable agency details.
type AgencyInput struct {
	Name         string `json:"name" validate:"required,min=2"`
	CompanyEmail string `json:"companyEmail" validate:"required,email"`
	CompanyPhone string `json:"companyPhone" validate:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	State        string `json:"state"`
	Country      string `json:"country"`
	AgencyLogo   string `json:"agencyLogo" validate:"omitempty,url"`
	WhiteLabel   bool   `json:"whiteLabel"`
	Goal         int    `json:"goal" validate:"gte=0"`
}

func (in *AgencyInput) apply(a *types.Agency) {
	a.Name = in.Name
	a.CompanyEmail = in.CompanyEmail
	a.CompanyPhone = in.CompanyPhone
	a.Address = in.Address
	a.City = in.City
	a.ZipCode = in.ZipCode
	a.State = in.State
	a.Country = in.Country
	a.AgencyLogo = in.AgencyLogo
	a.WhiteLabel = in.WhiteLabel
	a.Goal = in.Goal
}

// Entry tells a signed-in caller where their workspace is. Onboarding is set
// when the caller has no agency yet.
type Entry struct {
	User       *types.User `json:"user,omitempty"`
	AgencyID   string      `json:"agencyId,omitempty"`
	Redirect   string      `json:"redirect,omitempty"`
	Onboarding bool        `json:"onboarding"`
}

// Details is the agency workspace landing data.
type Details struct {
	Agency        *types.Agency          `json:"agency"`
	Sidebar       []*types.SidebarOption `json:"sidebar"`
	Notifications []*types.Notification  `json:"notifications"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	tx          TxInterface
	access      AccessInterface
	invitations InvitationsInterface
	notifier    NotifierInterface
	rolesync    RoleSyncInterface
	authz       AuthorizerInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	access AccessInterface,
	invitations InvitationsInterface,
	notifier NotifierInterface,
	rolesync RoleSyncInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		tx:          tx,
		access:      access,
		invitations: invitations,
		notifier:    notifier,
		rolesync:    rolesync,
		authz:       authz,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (s *Service) Entry(ctx context.Context, rc types.RequestContext) (*Entry, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.Entry")
	defer span.End()

	agencyID, err := s.invitations.Reconcile(ctx, rc)
	if err != nil {
		return nil, err
	}

	if agencyID == "" {
		return &Entry{Onboarding: true}, nil
	}

	user, err := s.storage.GetUserByEmail(ctx, rc.CallerEmail())
	if err != nil {
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}

	switch user.Role {
	case types.RoleSubAccountUser, types.RoleSubAccountGuest:
		return &Entry{User: user, AgencyID: agencyID, Redirect: SubAccountPath}, nil
	case types.RoleAgencyOwner, types.RoleAgencyAdmin:
		return &Entry{User: user, AgencyID: agencyID, Redirect: "/agency/" + agencyID}, nil
	}

	return nil, access.ErrNotAuthorized
}

// CreateAgency onboards the caller as the owner of a new agency.
func (s *Service) CreateAgency(ctx context.Context, rc types.RequestContext, in *AgencyInput) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.CreateAgency")
	defer span.End()

	if rc.CallerEmail() == "" {
		return nil, access.ErrUnauthenticated
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	existing, err := s.storage.GetUserByEmail(ctx, rc.CallerEmail())
	switch {
	case err == nil && existing.AgencyID != "":
		return nil, ErrAgencyExists
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}

	var created *types.Agency

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		a := new(types.Agency)
		in.apply(a)

		var err error
		if created, err = s.storage.CreateAgency(ctx, a); err != nil {
			return err
		}

		_, err = s.storage.UpsertUser(ctx, &types.User{
			ID:        rc.Caller.ID,
			Name:      rc.Caller.Name(),
			Email:     rc.CallerEmail(),
			AvatarURL: rc.Caller.ImageURL,
			Role:      types.RoleAgencyOwner,
			AgencyID:  created.ID,
		})
		if err != nil {
			return err
		}

		if err := s.storage.CreateSidebarOptions(ctx, defaultSidebar(created.ID)); err != nil {
			return err
		}

		return s.storage.UpsertRoleSyncTask(ctx, rc.Caller.ID, types.RoleAgencyOwner)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agency: %w", err)
	}

	if err := s.rolesync.Sync(ctx, rc.Caller.ID, types.RoleAgencyOwner); err != nil {
		s.logger.Errorf("owner role of %s committed but not propagated: %v", rc.Caller.ID, err)
	}

	if err := s.authz.AssignAgencyRole(ctx, created.ID, rc.Caller.ID, types.RoleAgencyOwner); err != nil {
		s.logger.Errorf("failed to mirror owner of agency %s: %v", created.ID, err)
	}

	s.notifier.Record(ctx, rc.WithScope(types.AgencyScope(created.ID)), "created the agency "+created.Name)

	return created, nil
}

func (s *Service) UpdateAgency(ctx context.Context, rc types.RequestContext, in *AgencyInput) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.UpdateAgency")
	defer span.End()

	if _, err := s.authorize(ctx, rc); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	a, err := s.storage.GetAgencyByID(ctx, rc.Scope.AgencyID)
	if err != nil {
		return nil, err
	}

	in.apply(a)

	updated, err := s.storage.UpdateAgency(ctx, a)
	if err != nil {
		return nil, err
	}

	s.notifier.Record(ctx, rc, "updated the agency details")

	return updated, nil
}

// DeleteAgency removes the agency with everything it owns. Members are kept
// but lose their agency.
func (s *Service) DeleteAgency(ctx context.Context, rc types.RequestContext) error {
	ctx, span := s.tracer.Start(ctx, "agency.Service.DeleteAgency")
	defer span.End()

	d, err := s.authorize(ctx, rc)
	if err != nil {
		return err
	}

	if d.User == nil || d.User.Role != types.RoleAgencyOwner {
		s.logger.Security().AuthzFailure(rc.Caller.ID, rc.Scope.String(), "delete requires owner")
		return ErrOwnerRequired
	}

	if err := s.storage.DeleteAgency(ctx, rc.Scope.AgencyID); err != nil {
		return fmt.Errorf("failed to delete agency: %w", err)
	}

	s.logger.Security().AdminAction(rc.Caller.ID, "delete agency", rc.Scope.String())

	if err := s.authz.DeleteAgency(ctx, rc.Scope.AgencyID); err != nil {
		s.logger.Errorf("failed to clean agency %s relations: %v", rc.Scope.AgencyID, err)
	}

	return nil
}

func (s *Service) GetAgency(ctx context.Context, rc types.RequestContext) (*Details, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.GetAgency")
	defer span.End()

	if _, err := s.authorize(ctx, rc); err != nil {
		return nil, err
	}

	details := new(Details)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a, err := s.storage.GetAgencyByID(gctx, rc.Scope.AgencyID)
		details.Agency = a
		return err
	})
	g.Go(func() error {
		sidebar, err := s.storage.ListSidebarOptionsByAgencyID(gctx, rc.Scope.AgencyID)
		details.Sidebar = sidebar
		return err
	})
	g.Go(func() error {
		n, err := s.storage.ListNotifications(gctx, rc.Scope.AgencyID, "", 0, detailsNotifications)
		details.Notifications = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

func (s *Service) ListTeam(ctx context.Context, rc types.RequestContext) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.ListTeam")
	defer span.End()

	if _, err := s.authorize(ctx, rc); err != nil {
		return nil, err
	}

	return s.storage.ListUsersByAgencyID(ctx, rc.Scope.AgencyID)
}

// UpdateMemberRole changes the role of a team member. The store is updated
// together with a role sync marker, the identity provider follows.
func (s *Service) UpdateMemberRole(ctx context.Context, rc types.RequestContext, userID string, role types.Role) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.UpdateMemberRole")
	defer span.End()

	if !role.Valid() || role == types.RoleAgencyOwner {
		if role == types.RoleAgencyOwner && rc.Caller != nil {
			s.logger.Security().PrivilegeEscalationBlocked(rc.Caller.ID, "user:"+userID, role.String())
		}
		return nil, ErrInvalidRole
	}

	if _, err := s.authorize(ctx, rc); err != nil {
		return nil, err
	}

	member, err := s.member(ctx, rc, userID)
	if err != nil {
		return nil, err
	}

	var updated *types.User

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if updated, err = s.storage.UpdateUserRole(ctx, member.ID, role); err != nil {
			return err
		}

		return s.storage.UpsertRoleSyncTask(ctx, member.ID, role)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.logger.Security().AdminAction(rc.Caller.ID, "set role "+role.String(), "user:"+member.ID)

	if err := s.rolesync.Sync(ctx, member.ID, role); err != nil {
		s.logger.Errorf("role of %s committed but not propagated: %v", member.ID, err)
	}

	if err := s.authz.AssignAgencyRole(ctx, rc.Scope.AgencyID, member.ID, role); err != nil {
		s.logger.Errorf("failed to mirror agency role of %s: %v", member.ID, err)
	}

	s.notifier.Record(ctx, rc, fmt.Sprintf("changed the role of %s to %s", member.Email, role))

	return updated, nil
}

// RemoveMember detaches the user from the agency, the user record is kept.
func (s *Service) RemoveMember(ctx context.Context, rc types.RequestContext, userID string) error {
	ctx, span := s.tracer.Start(ctx, "agency.Service.RemoveMember")
	defer span.End()

	if _, err := s.authorize(ctx, rc); err != nil {
		return err
	}

	member, err := s.member(ctx, rc, userID)
	if err != nil {
		return err
	}

	if err := s.storage.DetachUser(ctx, member.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.logger.Security().AdminAction(rc.Caller.ID, "remove member", "user:"+member.ID)

	if err := s.authz.RemoveAgencyMember(ctx, rc.Scope.AgencyID, member.ID); err != nil {
		s.logger.Errorf("failed to clean relations of %s: %v", member.ID, err)
	}

	s.notifier.Record(ctx, rc, "removed "+member.Email+" from the team")

	return nil
}

// member loads a user of the scoped agency that is not its owner. Users of
// other agencies are reported as missing.
func (s *Service) member(ctx context.Context, rc types.RequestContext, userID string) (*types.User, error) {
	u, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.AgencyID != rc.Scope.AgencyID {
		return nil, fmt.Errorf("user %s: %w", userID, storage.ErrNotFound)
	}

	if u.Role == types.RoleAgencyOwner {
		return nil, ErrOwnerImmutable
	}

	return u, nil
}

func (s *Service) authorize(ctx context.Context, rc types.RequestContext) (*access.Decision, error) {
	if rc.Scope.Kind != types.AgencyScopeKind {
		return nil, access.ErrNotAuthorized
	}

	d, err := s.access.Authorize(ctx, rc)
	if err != nil {
		return nil, err
	}

	if err := d.Err(); err != nil {
		return nil, err
	}

	return d, nil
}
