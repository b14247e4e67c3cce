// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"github.com/canonical/agency-service/internal/types"
)

// defaultSidebar is the navigation every new agency starts with.
func defaultSidebar(agencyID string) []*types.SidebarOption {
	base := "/agency/" + agencyID

	options := []struct {
		name string
		icon types.SidebarIcon
		link string
	}{
		{"Dashboard", types.IconCategory, base},
		{"Launchpad", types.IconClipboard, base + "/launchpad"},
		{"Billing", types.IconPayment, base + "/billing"},
		{"Settings", types.IconSettings, base + "/settings"},
		{"Sub Accounts", types.IconPerson, base + "/all-subaccounts"},
		{"Team", types.IconShield, base + "/team"},
	}

	sidebar := make([]*types.SidebarOption, 0, len(options))
	for _, o := range options {
		sidebar = append(sidebar, &types.SidebarOption{Name: o.name, Icon: o.icon, Link: o.link, AgencyID: agencyID})
	}

	return sidebar
}
