// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
)

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type MeResponse struct {
	Caller *types.Identity `json:"caller"`
	*Entry
}

type API struct {
	service  ServiceInterface
	loginURL string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// NewAPI serves the agency endpoints. loginURL is where the sign-in pages
// send browsers, when empty they answer with a plain message.
func NewAPI(service ServiceInterface, loginURL string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		loginURL: loginURL,
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/me", a.me)
	mux.Post("/api/v0/agencies", a.create)
	mux.Get("/api/v0/agencies/{agencyID}", a.get)
	mux.Put("/api/v0/agencies/{agencyID}", a.update)
	mux.Delete("/api/v0/agencies/{agencyID}", a.delete)
	mux.Get("/api/v0/agencies/{agencyID}/team", a.team)
	mux.Put("/api/v0/agencies/{agencyID}/team/{userID}", a.updateRole)
	mux.Delete("/api/v0/agencies/{agencyID}/team/{userID}", a.removeMember)

	mux.Get("/agency", a.entry)
	mux.Get("/agency/sign-in", a.signIn)
	mux.Get("/agency/sign-up", a.signIn)
	mux.Get("/agency/{agencyID}", a.get)
}

func agencyContext(r *http.Request) types.RequestContext {
	return types.NewRequestContext(r.Context(), types.AgencyScope(chi.URLParam(r, "agencyID")))
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.me")
	defer span.End()

	rc := types.NewRequestContext(ctx, types.Scope{})

	entry, err := a.service.Entry(ctx, rc)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    MeResponse{Caller: rc.Caller, Entry: entry},
		Message: "Caller details",
	})
}

// entry sends the caller to their workspace.
func (a *API) entry(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.entry")
	defer span.End()

	entry, err := a.service.Entry(ctx, types.NewRequestContext(ctx, types.Scope{}))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if entry.Onboarding {
		httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
			Data:    entry,
			Message: "Create an agency to get started",
		})
		return
	}

	target := entry.Redirect
	if plan := r.URL.Query().Get("plan"); plan != "" && entry.User.Role.IsAgencyRole() {
		target += "/billing?plan=" + url.QueryEscape(plan)
	}

	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (a *API) signIn(w http.ResponseWriter, r *http.Request) {
	if a.loginURL != "" {
		http.Redirect(w, r, a.loginURL, http.StatusSeeOther)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "Sign in with your identity provider"})
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.create")
	defer span.End()

	in := new(AgencyInput)
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "error parsing JSON payload")
		return
	}

	agency, err := a.service.CreateAgency(ctx, types.NewRequestContext(ctx, types.Scope{}), in)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{
		Data:    agency,
		Message: "Agency created",
	})
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.get")
	defer span.End()

	details, err := a.service.GetAgency(ctx, agencyContext(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    details,
		Message: "Agency details",
	})
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.update")
	defer span.End()

	in := new(AgencyInput)
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "error parsing JSON payload")
		return
	}

	agency, err := a.service.UpdateAgency(ctx, agencyContext(r), in)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    agency,
		Message: "Agency updated",
	})
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.delete")
	defer span.End()

	if err := a.service.DeleteAgency(ctx, agencyContext(r)); err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "Agency deleted"})
}

func (a *API) team(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.team")
	defer span.End()

	users, err := a.service.ListTeam(ctx, agencyContext(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    users,
		Message: "List of team members",
	})
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.updateRole")
	defer span.End()

	req := new(UpdateRoleRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "error parsing JSON payload")
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.service.UpdateMemberRole(ctx, agencyContext(r), chi.URLParam(r, "userID"), role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    user,
		Message: "Role updated",
	})
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.removeMember")
	defer span.End()

	if err := a.service.RemoveMember(ctx, agencyContext(r), chi.URLParam(r, "userID")); err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "Member removed"})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRole):
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrOwnerRequired), errors.Is(err, ErrOwnerImmutable):
		httptypes.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrAgencyExists):
		httptypes.WriteError(w, http.StatusConflict, err.Error())
	default:
		access.WriteError(w, err, a.logger)
	}
}
