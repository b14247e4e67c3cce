// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/authentication"
)

const (
	// HeaderName is the header used by the gateway to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"

	DefaultSessionCookie = "ory_kratos_session"
)

type Middleware struct {
	kratos        KratosClientInterface
	sessionCookie string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(kratos KratosClientInterface, sessionCookie string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	if sessionCookie == "" {
		sessionCookie = DefaultSessionCookie
	}

	return &Middleware{
		kratos:        kratos,
		sessionCookie: sessionCookie,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// HTTPMiddleware stores the caller identity on the request context. Requests
// without a resolvable caller continue anonymously.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		caller, err := m.resolve(ctx, r)
		if err != nil {
			m.logger.Errorf("failed to resolve caller: %v", err)
		}

		if caller != nil {
			ctx = types.WithCaller(ctx, caller)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) resolve(ctx context.Context, r *http.Request) (*types.Identity, error) {
	if p := authentication.PrincipalFromContext(ctx); p != nil && p.Subject != "" {
		return m.kratos.GetIdentity(ctx, p.Subject)
	}

	if userID := r.Header.Get(HeaderName); userID != "" {
		return m.kratos.GetIdentity(ctx, userID)
	}

	cookie, err := r.Cookie(m.sessionCookie)
	if err != nil {
		return nil, nil
	}

	return m.kratos.ToSession(ctx, cookie.String())
}
