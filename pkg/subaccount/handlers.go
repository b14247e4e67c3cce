// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subaccount

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

type SetPermissionRequest struct {
	Email        string `json:"email"`
	SubAccountID string `json:"subAccountId"`
	Access       bool   `json:"access"`
}

type API struct {
	service ServiceInterface
	scope   access.ScopeFunc

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// NewAPI serves the subaccount endpoints, scope resolves the parent agency
// of the subaccount routes.
func NewAPI(service ServiceInterface, scope access.ScopeFunc, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		scope:   scope,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/agencies/{agencyID}/subaccounts", a.create)
	mux.Get("/api/v0/agencies/{agencyID}/subaccounts", a.list)
	mux.Get("/api/v0/agencies/{agencyID}/permissions", a.listPermissions)
	mux.Put("/api/v0/agencies/{agencyID}/permissions", a.setPermission)

	mux.Get("/api/v0/subaccounts/{subAccountID}", a.get)
	mux.Put("/api/v0/subaccounts/{subAccountID}", a.update)
	mux.Delete("/api/v0/subaccounts/{subAccountID}", a.delete)

	mux.Get("/subaccount", a.landing)
	mux.Get("/subaccount/{subAccountID}", a.get)
}

func agencyContext(r *http.Request) types.RequestContext {
	return types.NewRequestContext(r.Context(), types.AgencyScope(chi.URLParam(r, "agencyID")))
}

func (a *API) subAccountContext(r *http.Request) (types.RequestContext, error) {
	scope, err := a.scope(r)
	if err != nil {
		return types.RequestContext{}, err
	}

	return types.NewRequestContext(r.Context(), scope), nil
}

func (a *API) landing(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subaccount.API.landing")
	defer span.End()

	target, err := a.service.Landing(ctx, types.NewRequestContext(ctx, types.Scope{}))
	if err != nil {
		a.writeError(w, err)
		return
	}

	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subaccount.API.create")
	defer span.End()

	in := new(SubAccountInput)
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "error parsing JSON payload")
		return
	}

	sub, err := a.service.CreateSubAccount(ctx, agencyContext(r), in)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{
		Data:    sub,
		Message: "Subaccount created",
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subaccount.API.list")
	defer span.End()

	subs, err := a.service.ListSubAccounts(ctx, agencyContext(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    subs,
		Message: "List of subaccounts",
	})
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subaccount.API.get")
	defer span.End()

	rc, err := a.subAccountContext(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	details, err := a.service.GetSubAccount(ctx, rc)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    details,
		Message: "Subaccount details",
	})
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subaccount.API.update")
	defer span.End()

	in := new(SubAccountInput)
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "error parsing JSON payload")
		return
	}

	rc, err := a.subAccountContext(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	sub, err := a.service.UpdateSubAccount(ctx, rc, in)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    sub,
		Message: "Subaccount updated",
	})
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subaccount.API.delete")
	defer span.End()

	rc, err := a.subAccountContext(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.DeleteSubAccount(ctx, rc); err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "Subaccount deleted"})
}

func (a *API) setPermission(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subaccount.API.setPermission")
	defer span.End()

	req := new(SetPermissionRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "error parsing JSON payload")
		return
	}

	p, err := a.service.SetPermission(ctx, agencyContext(r), req.Email, req.SubAccountID, req.Access)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    p,
		Message: "Permission saved",
	})
}

func (a *API) listPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subaccount.API.listPermissions")
	defer span.End()

	email := r.URL.Query().Get("email")
	if email == "" {
		httptypes.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}

	perms, err := a.service.ListPermissions(ctx, agencyContext(r), email)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    perms,
		Message: "List of permissions",
	})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoOwner):
		httptypes.WriteError(w, http.StatusConflict, err.Error())
	default:
		access.WriteError(w, err, a.logger)
	}
}
