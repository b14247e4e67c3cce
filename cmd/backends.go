// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/config"
	"github.com/canonical/agency-service/internal/db"
	"github.com/canonical/agency-service/internal/kratos"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring/prometheus"
	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/pkg/rolesync"
)

// backends holds the clients shared by the long running commands.
type backends struct {
	specs *config.EnvSpec

	logger  *logging.Logger
	monitor *prometheus.Monitor
	tracer  *tracing.Tracer

	db         *db.DBClient
	storage    *storage.Storage
	kratos     *kratos.Client
	authorizer *authorization.Authorizer
	roleSync   *rolesync.Service
}

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}
	return specs, nil
}

func newBackends(ctx context.Context, specs *config.EnvSpec) (*backends, error) {
	b := &backends{specs: specs}

	b.logger = logging.NewLogger(specs.LogLevel)
	b.monitor = prometheus.NewMonitor("agency-service", b.logger)
	b.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, b.logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TxTimeout:       specs.DBTxTimeout,
			TracingEnabled:  specs.TracingEnabled,
		},
		b.tracer,
		b.monitor,
		b.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}
	b.db = dbClient
	b.storage = storage.NewStorage(dbClient, b.tracer, b.monitor, b.logger)

	b.kratos = kratos.NewClient(specs.KratosAdminURL, specs.KratosPublicURL, b.tracer, b.monitor, b.logger)

	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				b.tracer,
				b.monitor,
				b.logger,
			),
		)
		b.authorizer = authorization.NewAuthorizer(ofga, b.tracer, b.monitor, b.logger)
		b.logger.Info("Relationship mirror is enabled")

		if err := b.authorizer.ValidateModel(ctx); err != nil {
			b.close()
			return nil, fmt.Errorf("invalid authorization model: %w", err)
		}
	} else {
		b.authorizer = authorization.NewAuthorizer(openfga.NewNoopClient(b.tracer, b.monitor, b.logger), b.tracer, b.monitor, b.logger)
		b.logger.Info("Using noop relationship mirror")
	}

	b.roleSync = rolesync.NewService(
		b.storage,
		b.kratos,
		rolesync.Config{
			BatchSize:      specs.RoleSyncBatchSize,
			MaxElapsedTime: specs.RoleSyncMaxElapsed,
		},
		b.tracer,
		b.monitor,
		b.logger,
	)

	return b, nil
}

func (b *backends) close() {
	b.db.Close()
	_ = b.logger.Sync()
}
