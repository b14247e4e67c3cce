// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

const (
	metadataPublicPath = "/metadata_public"
	roleMetadataKey    = "role"
)

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
	ToSession(ctx context.Context, cookie string) (*types.Identity, error)
	SetUserRole(ctx context.Context, id string, role types.Role) error
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	admin  *ory.APIClient
	public *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func newAPIClient(url string) *ory.APIClient {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: url}}
	return ory.NewAPIClient(conf)
}

// NewClient builds a client for the admin API and, when publicURL is set,
// for the frontend API used to resolve session cookies.
func NewClient(adminURL, publicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := &Client{
		admin:   newAPIClient(adminURL),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	if publicURL != "" {
		c.public = newAPIClient(publicURL)
	}

	return c
}

func (c *Client) setAvailability(r *http.Response, err error) {
	available := 1.0
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		available = 0
	}

	if merr := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, available); merr != nil {
		c.logger.Debugf("failed to set kratos availability: %v", merr)
	}
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	c.setAvailability(r, err)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

func (c *Client) CreateIdentity(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.CreateIdentity")
	defer span.End()

	body := ory.CreateIdentityBody{
		SchemaId: "default",
		Traits:   map[string]interface{}{"email": email},
	}

	identity, r, err := c.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	c.setAvailability(r, err)
	if err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentity")
	defer span.End()

	identity, r, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	c.setAvailability(r, err)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identityFromOry(identity), nil
}

// ToSession resolves a session cookie into the caller identity. An invalid
// or expired session yields a nil identity and no error.
func (c *Client) ToSession(ctx context.Context, cookie string) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.ToSession")
	defer span.End()

	if c.public == nil || cookie == "" {
		return nil, nil
	}

	session, r, err := c.public.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	c.setAvailability(r, err)
	if err != nil {
		if r != nil && (r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if session.Active != nil && !*session.Active {
		return nil, nil
	}

	return identityFromOry(session.Identity), nil
}

// SetUserRole writes the role into the identity public metadata. Identities
// often have no public metadata at all, so the whole object is replaced with
// the current one plus the role, keeping every other key.
func (c *Client) SetUserRole(ctx context.Context, id string, role types.Role) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SetUserRole")
	defer span.End()

	identity, r, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	c.setAvailability(r, err)
	if err != nil {
		return fmt.Errorf("failed to read identity metadata: %w", err)
	}

	metadata := withRole(identity.MetadataPublic, role)
	patch := []ory.JsonPatch{
		{Op: "add", Path: metadataPublicPath, Value: metadata},
	}

	_, r, err = c.admin.IdentityAPI.PatchIdentity(ctx, id).JsonPatch(patch).Execute()
	c.setAvailability(r, err)
	if err != nil {
		return fmt.Errorf("failed to set role metadata: %w", err)
	}

	return nil
}

func withRole(current interface{}, role types.Role) map[string]interface{} {
	metadata := make(map[string]interface{})

	if m, ok := current.(map[string]interface{}); ok {
		for k, v := range m {
			metadata[k] = v
		}
	}

	metadata[roleMetadataKey] = role.String()

	return metadata
}

func (c *Client) CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.CreateRecoveryLink")
	defer span.End()

	body := ory.CreateRecoveryCodeForIdentityBody{
		IdentityId: identityID,
		ExpiresIn:  &expiresIn,
	}

	recoveryCode, r, err := c.admin.IdentityAPI.CreateRecoveryCodeForIdentity(ctx).CreateRecoveryCodeForIdentityBody(body).Execute()
	c.setAvailability(r, err)
	if err != nil {
		return "", "", fmt.Errorf("failed to create recovery code: %w", err)
	}

	return recoveryCode.RecoveryLink, recoveryCode.RecoveryCode, nil
}
