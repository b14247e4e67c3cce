// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/version"
)

type Status struct {
	Status    string `json:"status"`
	BuildInfo string `json:"buildInfo"`
}

type API struct {
	db DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    Status{Status: "ok", BuildInfo: version.Version},
		Message: "alive",
	})
}

// ready reports 503 until the database answers a ping.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("readiness check failed: %v", err)
		httptypes.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    Status{Status: "ready", BuildInfo: version.Version},
		Message: "ready",
	})
}

func NewAPI(db DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
