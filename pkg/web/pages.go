// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/pkg/access"
)

type Page struct {
	Path         string `json:"path"`
	Domain       string `json:"domain,omitempty"`
	AgencyID     string `json:"agencyId,omitempty"`
	SubAccountID string `json:"subAccountId,omitempty"`
	UserID       string `json:"userId,omitempty"`
	Role         string `json:"role,omitempty"`
}

// pages answers workspace page requests once the caller passed the tenant
// gate. Rendering belongs to the UI, this only reports the resolved context.
type pages struct {
	access *access.Service

	logger logging.LoggerInterface
}

func newPages(accessSvc *access.Service, logger logging.LoggerInterface) *pages {
	return &pages{access: accessSvc, logger: logger}
}

func (p *pages) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/site", p.site)
	mux.With(p.access.RequireScope(access.AgencyParam("agencyID"))).Get("/agency/{agencyID}/*", p.workspace)
	mux.With(p.access.RequireScope(p.access.SubAccountParam("subAccountID"))).Get("/subaccount/{subAccountID}/*", p.workspace)
	mux.Get("/{domain}", p.domain)
	mux.Get("/{domain}/*", p.domain)
}

// reserved first path segments never name a custom domain.
var reserved = map[string]bool{
	"api":        true,
	"webhooks":   true,
	"agency":     true,
	"subaccount": true,
	"site":       true,
}

// domain serves the public pages of a custom domain, reached through the
// tenant rewrite to /<domain>/<path>.
func (p *pages) domain(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	if reserved[domain] {
		httptypes.WriteError(w, http.StatusNotFound, "page not found")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    Page{Path: "/" + chi.URLParam(r, "*"), Domain: domain},
		Message: "domain",
	})
}

func (p *pages) site(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    Page{Path: "/site"},
		Message: "site",
	})
}

func (p *pages) workspace(w http.ResponseWriter, r *http.Request) {
	page := Page{
		Path:         r.URL.Path,
		AgencyID:     chi.URLParam(r, "agencyID"),
		SubAccountID: chi.URLParam(r, "subAccountID"),
	}

	if d := access.DecisionFromContext(r.Context()); d != nil && d.User != nil {
		page.UserID = d.User.ID
		page.Role = d.User.Role.String()
		if page.AgencyID == "" {
			page.AgencyID = d.User.AgencyID
		}
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    page,
		Message: "workspace",
	})
}
