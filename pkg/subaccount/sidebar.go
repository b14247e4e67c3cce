// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subaccount

import (
	"github.com/canonical/agency-service/internal/types"
)

func defaultSidebar(subAccountID string) []*types.SidebarOption {
	base := "/subaccount/" + subAccountID

	options := []struct {
		name string
		icon types.SidebarIcon
		link string
	}{
		{"Launchpad", types.IconClipboard, base + "/launchpad"},
		{"Settings", types.IconSettings, base + "/settings"},
		{"Funnels", types.IconPipelines, base + "/funnels"},
		{"Media", types.IconDatabase, base + "/media"},
		{"Automations", types.IconChip, base + "/automations"},
		{"Pipelines", types.IconFlag, base + "/pipelines"},
		{"Contacts", types.IconPerson, base + "/contacts"},
		{"Dashboard", types.IconCategory, base},
	}

	sidebar := make([]*types.SidebarOption, 0, len(options))
	for _, o := range options {
		sidebar = append(sidebar, &types.SidebarOption{Name: o.name, Icon: o.icon, Link: o.link, SubAccountID: subAccountID})
	}

	return sidebar
}
