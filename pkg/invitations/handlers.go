// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

type CreateInvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ReconcileResponse struct {
	AgencyID string `json:"agencyId"`
}

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
	mux.Route("/api/v0/agencies/{agencyID}/invitations", func(r chi.Router) {
		r.Post("/", a.create)
		r.Get("/", a.list)
		r.Delete("/{invitationID}", a.cancel)
	})
	mux.Post("/api/v0/me/reconcile", a.reconcile)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.create")
	defer span.End()

	req := new(CreateInvitationRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "error parsing JSON payload")
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rc := types.NewRequestContext(ctx, types.AgencyScope(chi.URLParam(r, "agencyID")))

	invite, err := a.service.CreateInvitation(ctx, rc, req.Email, role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{
		Data:    invite,
		Message: "Invitation created",
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.list")
	defer span.End()

	rc := types.NewRequestContext(ctx, types.AgencyScope(chi.URLParam(r, "agencyID")))

	invitations, err := a.service.ListInvitations(ctx, rc)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    invitations,
		Message: "List of invitations",
	})
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.cancel")
	defer span.End()

	rc := types.NewRequestContext(ctx, types.AgencyScope(chi.URLParam(r, "agencyID")))

	if err := a.service.CancelInvitation(ctx, rc, chi.URLParam(r, "invitationID")); err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "Invitation cancelled"})
}

func (a *API) reconcile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.reconcile")
	defer span.End()

	agencyID, err := a.service.Reconcile(ctx, types.NewRequestContext(ctx, types.Scope{}))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    ReconcileResponse{AgencyID: agencyID},
		Message: "Invitation reconciled",
	})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidRole):
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvitationPending), errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrInvitationNotPending):
		httptypes.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrRateLimited):
		httptypes.WriteError(w, http.StatusTooManyRequests, err.Error())
	default:
		access.WriteError(w, err, a.logger)
	}
}
