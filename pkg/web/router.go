// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/db"
	"github.com/canonical/agency-service/internal/identity"
	"github.com/canonical/agency-service/internal/kratos"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/pkg/access"
	"github.com/canonical/agency-service/pkg/agency"
	"github.com/canonical/agency-service/pkg/authentication"
	"github.com/canonical/agency-service/pkg/invitations"
	"github.com/canonical/agency-service/pkg/metrics"
	"github.com/canonical/agency-service/pkg/notifications"
	"github.com/canonical/agency-service/pkg/rolesync"
	"github.com/canonical/agency-service/pkg/routing"
	"github.com/canonical/agency-service/pkg/status"
	"github.com/canonical/agency-service/pkg/subaccount"
	"github.com/canonical/agency-service/pkg/webhooks"
)

// Config carries the deployment settings the HTTP surface depends on.
type Config struct {
	RootDomain         string
	CORSAllowedOrigins []string
	SessionCookieName  string
	LoginUIURL         string
	InvitationLifetime string
	InviteRateLimit    float64
	InviteRateBurst    int
}

// unrouted paths bypass the tenant resolver, they are served on any host.
var unrouted = []string{"/api/", "/webhooks/"}

func NewRouter(
	cfg Config,
	s *storage.Storage,
	dbClient db.DBClientInterface,
	kratosClient *kratos.Client,
	authorizer *authorization.Authorizer,
	roleSync *rolesync.Service,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	resolver := routing.NewResolver(cfg.RootDomain)

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
		skipPrefixes(routing.NewMiddleware(resolver, logger).Route, unrouted...),
		authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(),
		identity.NewMiddleware(kratosClient, cfg.SessionCookieName, tracer, monitor, logger).HTTPMiddleware,
	)

	router.Use(middlewares...)

	accessSvc := access.NewService(s, tracer, monitor, logger)
	notificationSvc := notifications.NewService(s, accessSvc, tracer, monitor, logger)
	invitationSvc := invitations.NewService(
		s,
		dbClient,
		accessSvc,
		notificationSvc,
		roleSync,
		authorizer,
		kratosClient,
		invitations.NewAgencyLimiter(cfg.InviteRateLimit, cfg.InviteRateBurst, 0),
		cfg.InvitationLifetime,
		tracer,
		monitor,
		logger,
	)
	agencySvc := agency.NewService(
		s,
		dbClient,
		accessSvc,
		invitationSvc,
		notificationSvc,
		roleSync,
		authorizer,
		tracer,
		monitor,
		logger,
	)
	subAccountSvc := subaccount.NewService(
		s,
		dbClient,
		accessSvc,
		invitationSvc,
		notificationSvc,
		authorizer,
		tracer,
		monitor,
		logger,
	)
	webhookSvc := webhooks.NewService(s, invitationSvc, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)
	notifications.NewAPI(notificationSvc, tracer, logger).RegisterEndpoints(router)
	invitations.NewAPI(invitationSvc, tracer, logger).RegisterEndpoints(router)
	agency.NewAPI(agencySvc, cfg.LoginUIURL, tracer, logger).RegisterEndpoints(router)
	subaccount.NewAPI(subAccountSvc, accessSvc.SubAccountParam("subAccountID"), tracer, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhookSvc, logger).RegisterEndpoints(router)
	newPages(accessSvc, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
