// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	ory "github.com/ory/client-go"

	"github.com/canonical/agency-service/internal/types"
)

// identityFromOry maps the default identity schema traits
// (email, name.first, name.last, picture) onto the caller identity.
func identityFromOry(i *ory.Identity) *types.Identity {
	if i == nil {
		return nil
	}

	identity := &types.Identity{ID: i.Id}

	traits, ok := i.Traits.(map[string]interface{})
	if !ok {
		return identity
	}

	identity.Email = types.NormalizeEmail(stringTrait(traits, "email"))
	identity.ImageURL = stringTrait(traits, "picture")

	if name, ok := traits["name"].(map[string]interface{}); ok {
		identity.FirstName = stringTrait(name, "first")
		identity.LastName = stringTrait(name, "last")
	}

	return identity
}

func stringTrait(traits map[string]interface{}, key string) string {
	v, _ := traits[key].(string)
	return v
}
