// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/types"
)

const SignInPath = "/agency/sign-in"

// ScopeFunc extracts the tenant scope a request targets.
type ScopeFunc func(r *http.Request) (types.Scope, error)

type decisionContextKey struct{}

func DecisionFromContext(ctx context.Context) *Decision {
	if d, ok := ctx.Value(decisionContextKey{}).(*Decision); ok {
		return d
	}
	return nil
}

// AgencyParam scopes a request on the agency id found in the named route
// parameter.
func AgencyParam(name string) ScopeFunc {
	return func(r *http.Request) (types.Scope, error) {
		return types.AgencyScope(chi.URLParam(r, name)), nil
	}
}

// SubAccountParam scopes a request on the subaccount id found in the named
// route parameter, resolving its parent agency.
func (s *Service) SubAccountParam(name string) ScopeFunc {
	return func(r *http.Request) (types.Scope, error) {
		return s.ScopeForSubAccount(r.Context(), chi.URLParam(r, name))
	}
}

// RequireScope only lets allowed callers through. Anonymous callers are sent
// to the sign-in page, denials are answered with 403.
func (s *Service) RequireScope(scope ScopeFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sc, err := scope(r)
			if err != nil {
				WriteError(w, err, s.logger)
				return
			}

			d, err := s.Authorize(ctx, types.NewRequestContext(ctx, sc))
			if err != nil {
				WriteError(w, err, s.logger)
				return
			}

			if !d.Allowed {
				WriteError(w, d.Err(), s.logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, decisionContextKey{}, d)))
		})
	}
}

// WriteError renders access errors with their dedicated responses and
// delegates anything else to the generic mapping.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		w.Header().Set("Location", SignInPath)
		httptypes.WriteError(w, http.StatusSeeOther, "unauthenticated")
	case errors.Is(err, ErrNotProvisioned):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":     http.StatusForbidden,
			"message":    "not provisioned",
			"onboarding": true,
		})
	case errors.Is(err, ErrNotAuthorized):
		httptypes.WriteError(w, http.StatusForbidden, "not authorized")
	default:
		status, message := httptypes.ErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Errorf("request failed: %v", err)
		}
		httptypes.WriteError(w, status, message)
	}
}
