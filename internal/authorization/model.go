// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	_ "embed"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
)

//go:embed schema/v0.json
var v0Model []byte

type AuthorizationModelProvider struct {
	apiVersion string
}

// GetModel returns the embedded model for the configured API version.
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	var raw []byte

	switch a.apiVersion {
	case "v0":
		raw = v0Model
	default:
		panic(fmt.Sprintf("unknown authorization model version %s", a.apiVersion))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal(raw, model); err != nil {
		panic(fmt.Sprintf("invalid embedded authorization model: %v", err))
	}

	return model
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{apiVersion: apiVersion}
}
