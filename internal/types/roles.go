// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAgencyOwner     Role = "AGENCY_OWNER"
	RoleAgencyAdmin     Role = "AGENCY_ADMIN"
	RoleSubAccountUser  Role = "SUBACCOUNT_USER"
	RoleSubAccountGuest Role = "SUBACCOUNT_GUEST"
)

// Roles lists every role, agency roles first.
var Roles = []Role{RoleAgencyOwner, RoleAgencyAdmin, RoleSubAccountUser, RoleSubAccountGuest}

func (r Role) Valid() bool {
	switch r {
	case RoleAgencyOwner, RoleAgencyAdmin, RoleSubAccountUser, RoleSubAccountGuest:
		return true
	}
	return false
}

// IsAgencyRole reports whether the role grants access to the whole agency.
func (r Role) IsAgencyRole() bool {
	return r == RoleAgencyOwner || r == RoleAgencyAdmin
}

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return r, nil
}

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "PENDING"
	InvitationAccepted  InvitationStatus = "ACCEPTED"
	InvitationCancelled InvitationStatus = "CANCELLED"
)

// SidebarIcon is a key the UI resolves to an asset.
type SidebarIcon string

const (
	IconSettings      SidebarIcon = "settings"
	IconChart         SidebarIcon = "chart"
	IconCalendar      SidebarIcon = "calendar"
	IconCheck         SidebarIcon = "check"
	IconChip          SidebarIcon = "chip"
	IconCompass       SidebarIcon = "compass"
	IconDatabase      SidebarIcon = "database"
	IconFlag          SidebarIcon = "flag"
	IconHome          SidebarIcon = "home"
	IconInfo          SidebarIcon = "info"
	IconLink          SidebarIcon = "link"
	IconLock          SidebarIcon = "lock"
	IconMessages      SidebarIcon = "messages"
	IconNotification  SidebarIcon = "notification"
	IconPayment       SidebarIcon = "payment"
	IconPower         SidebarIcon = "power"
	IconReceipt       SidebarIcon = "receipt"
	IconShield        SidebarIcon = "shield"
	IconStar          SidebarIcon = "star"
	IconTune          SidebarIcon = "tune"
	IconVideoRecorder SidebarIcon = "videorecorder"
	IconWallet        SidebarIcon = "wallet"
	IconWarning       SidebarIcon = "warning"
	IconHeadphone     SidebarIcon = "headphone"
	IconSend          SidebarIcon = "send"
	IconPipelines     SidebarIcon = "pipelines"
	IconPerson        SidebarIcon = "person"
	IconCategory      SidebarIcon = "category"
	IconContact       SidebarIcon = "contact"
	IconClipboard     SidebarIcon = "clipboardIcon"
)
