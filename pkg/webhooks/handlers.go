// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/registration", a.registration)
	mux.Post("/webhooks/token", a.tokenHook)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.logger.Errorf("invalid registration payload: %v", err)
		httptypes.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a.logger.Debugf("registration hook for identity %s", identity.ID)

	agencyID, err := a.service.HandleRegistration(r.Context(), identity.Identity())
	if err != nil {
		a.logger.Errorf("registration hook failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to handle registration")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    RegistrationResponse{AgencyID: agencyID},
		Message: "Registration handled",
	})
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Errorf("invalid token hook payload: %v", err)
		httptypes.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), req)
	if err != nil {
		a.logger.Errorf("token hook failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to handle token hook")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
