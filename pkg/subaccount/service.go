// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subaccount

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

var (
	ErrNoOwner      = errors.New("agency has no owner")
	ErrInvalidEmail = errors.New("invalid email")
)

type SubAccountInput struct {
	Name           string `json:"name" validate:"required,min=2"`
	CompanyEmail   string `json:"companyEmail" validate:"required,email"`
	CompanyPhone   string `json:"companyPhone" validate:"required"`
	Address        string `json:"address"`
	City           string `json:"city"`
	ZipCode        string `json:"zipCode"`
	State          string `json:"state"`
	Country        string `json:"country"`
	SubAccountLogo string `json:"subAccountLogo" validate:"omitempty,url"`
	Goal           int    `json:"goal" validate:"gte=0"`
}

func (in *SubAccountInput) apply(s *types.SubAccount) {
	s.Name = in.Name
	s.CompanyEmail = in.CompanyEmail
	s.CompanyPhone = in.CompanyPhone
	s.Address = in.Address
	s.City = in.City
	s.ZipCode = in.ZipCode
	s.State = in.State
	s.Country = in.Country
	s.SubAccountLogo = in.SubAccountLogo
	s.Goal = in.Goal
}

// Details is the subaccount workspace landing data. Logo is the branding to
// show: the agency logo for white-label agencies.
type Details struct {
	SubAccount *types.SubAccount      `json:"subAccount"`
	Logo       string                 `json:"logo"`
	Sidebar    []*types.SidebarOption `json:"sidebar"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	tx          TxInterface
	access      AccessInterface
	invitations InvitationsInterface
	notifier    NotifierInterface
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
		authz:       authz,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// Landing picks the first subaccount the caller can open.
func (s *Service) Landing(ctx context.Context, rc types.RequestContext) (string, error) {
	ctx, span := s.tracer.Start(ctx, "subaccount.Service.Landing")
	defer span.End()

	agencyID, err := s.invitations.Reconcile(ctx, rc)
	if err != nil {
		return "", err
	}

	if agencyID == "" {
		return "", access.ErrNotAuthorized
	}

	visible, err := s.ListSubAccounts(ctx, rc.WithScope(types.AgencyScope(agencyID)))
	if err != nil {
		return "", err
	}

	if len(visible) == 0 {
		return "", fmt.Errorf("%w: %s", access.ErrNotAuthorized, access.ReasonNoGrant)
	}

	return "/subaccount/" + visible[0].ID, nil
}

// CreateSubAccount adds a subaccount to the scoped agency. The agency owner
// is granted access to it.
func (s *Service) CreateSubAccount(ctx context.Context, rc types.RequestContext, in *SubAccountInput) (*types.SubAccount, error) {
	ctx, span := s.tracer.Start(ctx, "subaccount.Service.CreateSubAccount")
	defer span.End()

	if err := s.authorizeAgency(ctx, rc); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	owner, err := s.owner(ctx, rc.Scope.AgencyID)
	if err != nil {
		return nil, err
	}

	var created *types.SubAccount

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		sub := &types.SubAccount{AgencyID: rc.Scope.AgencyID}
		in.apply(sub)

		var err error
		if created, err = s.storage.CreateSubAccount(ctx, sub); err != nil {
			return err
		}

		_, err = s.storage.CreatePermission(ctx, &types.Permission{Email: owner.Email, SubAccountID: created.ID, Access: true})
		if err != nil {
			return err
		}

		return s.storage.CreateSidebarOptions(ctx, defaultSidebar(created.ID))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subaccount: %w", err)
	}

	if err := s.authz.SetSubAccountParent(ctx, created.ID, created.AgencyID); err != nil {
		s.logger.Errorf("failed to mirror parent of subaccount %s: %v", created.ID, err)
	}

	s.notifier.Record(ctx, rc.WithScope(types.SubAccountScope(created.AgencyID, created.ID)), "created the subaccount "+created.Name)

	return created, nil
}

func (s *Service) owner(ctx context.Context, agencyID string) (*types.User, error) {
	users, err := s.storage.ListUsersByAgencyID(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Role == types.RoleAgencyOwner {
			return u, nil
		}
	}

	return nil, ErrNoOwner
}

func (s *Service) UpdateSubAccount(ctx context.Context, rc types.RequestContext, in *SubAccountInput) (*types.SubAccount, error) {
	ctx, span := s.tracer.Start(ctx, "subaccount.Service.UpdateSubAccount")
	defer span.End()

	sub, err := s.managed(ctx, rc)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	in.apply(sub)

	updated, err := s.storage.UpdateSubAccount(ctx, sub)
	if err != nil {
		return nil, err
	}

	s.notifier.Record(ctx, rc, "updated the subaccount "+updated.Name)

	return updated, nil
}

func (s *Service) DeleteSubAccount(ctx context.Context, rc types.RequestContext) error {
	ctx, span := s.tracer.Start(ctx, "subaccount.Service.DeleteSubAccount")
	defer span.End()

	sub, err := s.managed(ctx, rc)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteSubAccount(ctx, sub.ID); err != nil {
		return fmt.Errorf("failed to delete subaccount: %w", err)
	}

	s.logger.Security().AdminAction(rc.Caller.ID, "delete subaccount", rc.Scope.String())

	if err := s.authz.DeleteSubAccount(ctx, sub.ID); err != nil {
		s.logger.Errorf("failed to clean subaccount %s relations: %v", sub.ID, err)
	}

	// the subaccount is gone, its event belongs to the agency
	s.notifier.Record(ctx, rc.WithScope(types.AgencyScope(sub.AgencyID)), "deleted the subaccount "+sub.Name)

	return nil
}

// managed loads the scoped subaccount for an agency owner or admin.
func (s *Service) managed(ctx context.Context, rc types.RequestContext) (*types.SubAccount, error) {
	if rc.Scope.Kind != types.SubAccountScopeKind {
		return nil, access.ErrNotAuthorized
	}

	if err := s.authorizeAgency(ctx, rc.WithScope(types.AgencyScope(rc.Scope.AgencyID))); err != nil {
		return nil, err
	}

	sub, err := s.storage.GetSubAccountByID(ctx, rc.Scope.SubAccountID)
	if err != nil {
		return nil, err
	}

	if sub.AgencyID != rc.Scope.AgencyID {
		return nil, fmt.Errorf("subaccount %s: %w", sub.ID, storage.ErrNotFound)
	}

	return sub, nil
}

func (s *Service) GetSubAccount(ctx context.Context, rc types.RequestContext) (*Details, error) {
	ctx, span := s.tracer.Start(ctx, "subaccount.Service.GetSubAccount")
	defer span.End()

	if rc.Scope.Kind != types.SubAccountScopeKind {
		return nil, access.ErrNotAuthorized
	}

	d, err := s.access.Authorize(ctx, rc)
	if err != nil {
		return nil, err
	}
	if err := d.Err(); err != nil {
		return nil, err
	}

	var (
		details = new(Details)
		agency  *types.Agency
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sub, err := s.storage.GetSubAccountByID(gctx, rc.Scope.SubAccountID)
		details.SubAccount = sub
		return err
	})
	g.Go(func() error {
		a, err := s.storage.GetAgencyByID(gctx, rc.Scope.AgencyID)
		agency = a
		return err
	})
	g.Go(func() error {
		sidebar, err := s.storage.ListSidebarOptionsBySubAccountID(gctx, rc.Scope.SubAccountID)
		details.Sidebar = sidebar
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	details.Logo = details.SubAccount.SubAccountLogo
	if agency.WhiteLabel {
		details.Logo = agency.AgencyLogo
	}

	return details, nil
}

// ListSubAccounts returns the subaccounts of the scoped agency the caller
// can open.
func (s *Service) ListSubAccounts(ctx context.Context, rc types.RequestContext) ([]*types.SubAccount, error) {
	ctx, span := s.tracer.Start(ctx, "subaccount.Service.ListSubAccounts")
	defer span.End()

	if rc.Scope.Kind != types.AgencyScopeKind {
		return nil, access.ErrNotAuthorized
	}

	d, err := s.access.Authorize(ctx, rc)
	if err != nil {
		return nil, err
	}

	// subaccount roles are denied the agency scope but still see their grants
	switch {
	case d.Allowed:
	case d.Reason == access.ReasonInsufficientRole && d.User != nil && d.User.AgencyID == rc.Scope.AgencyID:
	default:
		return nil, d.Err()
	}

	return s.access.VisibleSubAccounts(ctx, d.User)
}

// SetPermission grants or revokes access of email to a subaccount of the
// scoped agency. The previous grants are kept as history.
func (s *Service) SetPermission(ctx context.Context, rc types.RequestContext, email, subAccountID string, allow bool) (*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "subaccount.Service.SetPermission")
	defer span.End()

	email = types.NormalizeEmail(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	if err := s.authorizeAgency(ctx, rc); err != nil {
		return nil, err
	}

	sub, err := s.storage.GetSubAccountByID(ctx, subAccountID)
	if err != nil {
		return nil, err
	}

	if sub.AgencyID != rc.Scope.AgencyID {
		return nil, fmt.Errorf("subaccount %s: %w", subAccountID, storage.ErrNotFound)
	}

	p, err := s.storage.CreatePermission(ctx, &types.Permission{Email: email, SubAccountID: sub.ID, Access: allow})
	if err != nil {
		return nil, fmt.Errorf("failed to store permission: %w", err)
	}

	verb := "revoked"
	if allow {
		verb = "granted"
	}

	s.logger.Security().AdminAction(rc.Caller.ID, verb+" access for "+email, "subaccount:"+sub.ID)
	s.mirrorGrant(ctx, email, sub.ID, allow)
	s.notifier.Record(ctx, rc.WithScope(types.SubAccountScope(sub.AgencyID, sub.ID)), fmt.Sprintf("%s access to %s for %s", verb, sub.Name, email))

	return p, nil
}

// mirrorGrant only applies to users that already exist.
func (s *Service) mirrorGrant(ctx context.Context, email, subAccountID string, allow bool) {
	u, err := s.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Errorf("failed to resolve grantee %s: %v", email, err)
		return
	}

	if err := s.authz.SetSubAccountGrant(ctx, subAccountID, u.ID, allow); err != nil {
		s.logger.Errorf("failed to mirror grant of %s on %s: %v", u.ID, subAccountID, err)
	}
}

func (s *Service) ListPermissions(ctx context.Context, rc types.RequestContext, email string) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "subaccount.Service.ListPermissions")
	defer span.End()

	if err := s.authorizeAgency(ctx, rc); err != nil {
		return nil, err
	}

	return s.storage.ListEffectivePermissions(ctx, types.NormalizeEmail(email), rc.Scope.AgencyID)
}

func (s *Service) authorizeAgency(ctx context.Context, rc types.RequestContext) error {
	if rc.Scope.Kind != types.AgencyScopeKind {
		return access.ErrNotAuthorized
	}

	d, err := s.access.Authorize(ctx, rc)
	if err != nil {
		return err
	}

	return d.Err()
}
