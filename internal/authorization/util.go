// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/agency-service/internal/types"
)

const (
	OWNER_RELATION   = "owner"
	ADMIN_RELATION   = "admin"
	MEMBER_RELATION  = "member"
	PARENT_RELATION  = "parent"
	GRANTEE_RELATION = "grantee"

	CAN_VIEW_PERMISSION = "viewer"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func AgencyTuple(agencyId string) string {
	return "agency:" + agencyId
}

func SubAccountTuple(subAccountId string) string {
	return "subaccount:" + subAccountId
}

// RoleRelation maps a store role to its agency relation.
func RoleRelation(role types.Role) string {
	switch role {
	case types.RoleAgencyOwner:
		return OWNER_RELATION
	case types.RoleAgencyAdmin:
		return ADMIN_RELATION
	}
	return MEMBER_RELATION
}
