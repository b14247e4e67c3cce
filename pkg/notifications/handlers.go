// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/agencies/{agencyID}/notifications", a.list)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.list")
	defer span.End()

	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)

	scope := types.AgencyScope(chi.URLParam(r, "agencyID"))
	if sub := q.Get("subaccount"); sub != "" {
		scope = types.SubAccountScope(scope.AgencyID, sub)
	}

	notifications, err := a.service.List(ctx, types.NewRequestContext(ctx, scope), page, size)
	if err != nil {
		access.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    notifications,
		Message: "List of notifications",
		Meta:    &httptypes.Meta{Page: page, Size: size},
	})
}
