// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/types"
)

// AuthorizerInterface mirrors tenant relationships into OpenFGA. Access
// decisions are never taken from the mirror.
type AuthorizerInterface interface {
	ValidateModel(context.Context) error

	AssignAgencyRole(ctx context.Context, agencyID, userID string, role types.Role) error
	RemoveAgencyMember(ctx context.Context, agencyID, userID string) error
	SetSubAccountParent(ctx context.Context, subAccountID, agencyID string) error
	SetSubAccountGrant(ctx context.Context, subAccountID, userID string, access bool) error

	DeleteAgency(ctx context.Context, agencyID string) error
	DeleteSubAccount(ctx context.Context, subAccountID string) error
}

type AuthzClientInterface interface {
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	WriteTuples(context.Context, ...openfga.Tuple) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
