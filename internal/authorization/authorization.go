// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

// AssignAgencyRole replaces whatever agency relation the user had with the
// one matching role.
func (a *Authorizer) AssignAgencyRole(ctx context.Context, agencyID, userID string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignAgencyRole")
	defer span.End()

	if err := a.removeAgencyRelations(ctx, agencyID, userID); err != nil {
		return err
	}

	return a.client.WriteTuple(ctx, UserTuple(userID), RoleRelation(role), AgencyTuple(agencyID))
}

func (a *Authorizer) RemoveAgencyMember(ctx context.Context, agencyID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveAgencyMember")
	defer span.End()

	return a.removeAgencyRelations(ctx, agencyID, userID)
}

func (a *Authorizer) removeAgencyRelations(ctx context.Context, agencyID, userID string) error {
	r, err := a.client.ReadTuples(ctx, UserTuple(userID), "", AgencyTuple(agencyID), "")
	if err != nil {
		return err
	}

	ts := make([]openfga.Tuple, 0, len(r.Tuples))
	for _, t := range r.Tuples {
		ts = append(ts, *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object))
	}

	return a.client.DeleteTuples(ctx, ts...)
}

func (a *Authorizer) SetSubAccountParent(ctx context.Context, subAccountID, agencyID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.SetSubAccountParent")
	defer span.End()

	return a.client.WriteTuple(ctx, AgencyTuple(agencyID), PARENT_RELATION, SubAccountTuple(subAccountID))
}

// SetSubAccountGrant mirrors the effective permission of a user on a
// subaccount, writing or removing the grantee tuple.
func (a *Authorizer) SetSubAccountGrant(ctx context.Context, subAccountID, userID string, access bool) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.SetSubAccountGrant")
	defer span.End()

	r, err := a.client.ReadTuples(ctx, UserTuple(userID), GRANTEE_RELATION, SubAccountTuple(subAccountID), "")
	if err != nil {
		return err
	}

	exists := len(r.Tuples) > 0

	switch {
	case access && !exists:
		return a.client.WriteTuple(ctx, UserTuple(userID), GRANTEE_RELATION, SubAccountTuple(subAccountID))
	case !access && exists:
		return a.client.DeleteTuple(ctx, UserTuple(userID), GRANTEE_RELATION, SubAccountTuple(subAccountID))
	}

	return nil
}

func (a *Authorizer) DeleteAgency(ctx context.Context, agencyID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteAgency")
	defer span.End()

	return a.deleteObject(ctx, AgencyTuple(agencyID))
}

func (a *Authorizer) DeleteSubAccount(ctx context.Context, subAccountID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteSubAccount")
	defer span.End()

	return a.deleteObject(ctx, SubAccountTuple(subAccountID))
}

// deleteObject removes every tuple pointing at object, page by page.
func (a *Authorizer) deleteObject(ctx context.Context, object string) error {
	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, "", "", object, cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
