// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

type Client struct {
	client *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) setAvailability(err error) {
	v := 1.0
	if err != nil {
		v = 0
	}
	if merr := c.monitor.SetDependencyAvailability(map[string]string{"component": "openfga"}, v); merr != nil {
		c.logger.Debugf("failed to set openfga availability: %v", merr)
	}
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	res, err := c.client.ReadAuthorizationModel(ctx).Execute()
	c.setAvailability(err)
	if err != nil {
		c.logger.Errorf("issues performing read operation: %s", err)
		return nil, err
	}

	model := res.GetAuthorizationModel()
	return &model, nil
}

// CompareModel reports whether the stored model has the same type
// definitions as the given one.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	current, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if current.SchemaVersion != model.SchemaVersion {
		c.logger.Errorf("invalid authorization model schema version")
		return false, nil
	}

	a, err := json.Marshal(current.TypeDefinitions)
	if err != nil {
		return false, err
	}
	b, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, err
	}

	return string(a) == string(b), nil
}

func (c *Client) WriteModel(ctx context.Context, body *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	res, err := c.client.WriteAuthorizationModel(ctx).Body(*body).Execute()
	c.setAvailability(err)
	if err != nil {
		return "", err
	}

	return res.GetAuthorizationModelId(), nil
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	res, err := c.client.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	c.setAvailability(err)
	if err != nil {
		return "", err
	}

	return res.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, id string) error {
	return c.client.SetStoreId(id)
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	options := client.ClientReadOptions{}
	if continuationToken != "" {
		options.ContinuationToken = &continuationToken
	}

	res, err := c.client.Read(ctx).Body(body).Options(options).Execute()
	c.setAvailability(err)
	if err != nil {
		c.logger.Errorf("issues performing read operation: %s", err)
		return nil, err
	}

	return res, nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	return c.WriteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientWriteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.writeKey())
	}

	_, err := c.client.WriteTuples(ctx).Body(body).Execute()
	c.setAvailability(err)
	if err != nil {
		return fmt.Errorf("failed to write tuples: %w", err)
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientDeleteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.deleteKey())
	}

	_, err := c.client.DeleteTuples(ctx).Body(body).Execute()
	c.setAvailability(err)
	if err != nil {
		return fmt.Errorf("failed to delete tuples: %w", err)
	}

	return nil
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	fgaConfig := &client.ClientConfiguration{
		ApiUrl:               cfg.ApiURL(),
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	fgaClient, err := client.NewSdkClient(fgaConfig)
	if err != nil {
		c.logger.Fatalf("issues setting up OpenFGA client %s", err)
	}

	c.client = fgaClient

	return c
}
