// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"github.com/canonical/agency-service/internal/types"
)

// KratosIdentity is the identity payload of the after-registration hook.
type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
	Name    struct {
		First string `json:"first,omitempty"`
		Last  string `json:"last,omitempty"`
	} `json:"name"`
}

func (k *KratosIdentity) Identity() *types.Identity {
	return &types.Identity{
		ID:        k.ID,
		Email:     k.Traits.Email,
		FirstName: k.Traits.Name.First,
		LastName:  k.Traits.Name.Last,
		ImageURL:  k.Traits.Picture,
	}
}

type RegistrationResponse struct {
	AgencyID string `json:"agencyId"`
}

// TokenHookResponse is the Hydra token hook answer, the claims are merged
// into the issued tokens.
type TokenHookResponse struct {
	Session struct {
		IDToken     map[string]interface{} `json:"id_token,omitempty"`
		AccessToken map[string]interface{} `json:"access_token,omitempty"`
	} `json:"session"`
}
