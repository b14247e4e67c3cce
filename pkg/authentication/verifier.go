// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// Config selects the issuer and the access policy of bearer tokens. A token
// passes when its subject is allowed or it carries the required scope.
type Config struct {
	Issuer          string
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

type claims struct {
	Subject  string   `json:"sub"`
	Scope    string   `json:"scope"`
	Scopes   []string `json:"scp"`
	AgencyID string   `json:"agency_id"`
	Role     string   `json:"role"`
}

func (c *claims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	config   Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	c := new(claims)
	if err := token.Claims(c); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return nil, err
	}

	if reason := v.deny(c); reason != "" {
		v.logger.Security().AuthzFailure(c.Subject, "bearer_api_access", reason)
		return nil, fmt.Errorf("unauthorized: %s", reason)
	}

	p := &Principal{Subject: c.Subject, AgencyID: c.AgencyID}
	if role, err := types.ParseRole(c.Role); err == nil {
		p.Role = role
	}

	return p, nil
}

// deny returns why the access policy rejects c, or "".
func (v *JWTVerifier) deny(c *claims) string {
	switch {
	case c.Subject == "":
		return "token has no subject"
	case len(v.config.AllowedSubjects) == 0 && v.config.RequiredScope == "":
		return "no access policy configured"
	case slices.Contains(v.config.AllowedSubjects, c.Subject):
		return ""
	case v.config.RequiredScope != "" && c.hasScope(v.config.RequiredScope):
		return ""
	}

	return "missing scope or subject not allowed"
}

// NewJWTVerifier verifies tokens against the keys of the configured issuer,
// found through OIDC discovery unless a JWKS URL is given.
func NewJWTVerifier(ctx context.Context, config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*JWTVerifier, error) {
	if config.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)
	oidcConfig := &oidc.Config{SkipClientIDCheck: true}

	v := &JWTVerifier{
		config:  config,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	if config.JWKSURL != "" {
		logger.Infof("Using JWKS URL %s for issuer %s", config.JWKSURL, config.Issuer)
		v.verifier = oidc.NewVerifier(config.Issuer, oidc.NewRemoteKeySet(ctx, config.JWKSURL), oidcConfig)
		return v, nil
	}

	provider, err := oidc.NewProvider(ctx, config.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover issuer %s: %w", config.Issuer, err)
	}
	logger.Infof("Using OIDC discovery for issuer %s", config.Issuer)

	return newJWTVerifier(provider, config, tracer, monitor, logger), nil
}

func newJWTVerifier(provider ProviderInterface, config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	return &JWTVerifier{
		verifier: provider.Verifier(&oidc.Config{SkipClientIDCheck: true}),
		config:   config,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
