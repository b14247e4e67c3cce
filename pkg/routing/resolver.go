// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"net"
	"strings"
)

const (
	AgencySignIn = "/agency/sign-in"
	sitePath     = "/site"
)

type Action int

const (
	NoAction Action = iota
	Rewrite
	Redirect
)

func (a Action) String() string {
	switch a {
	case Rewrite:
		return "rewrite"
	case Redirect:
		return "redirect"
	}
	return "none"
}

// Decision is the routing outcome for one request. Target is empty for
// NoAction and carries the raw query for the other actions.
type Decision struct {
	Action Action
	Target string
}

type Resolver struct {
	rootDomain string
}

func NewResolver(rootDomain string) *Resolver {
	return &Resolver{rootDomain: normalizeHost(rootDomain)}
}

// Resolve maps a request onto the marketing site, a tenant path or a
// canonical auth path. It does no I/O and every input yields a decision.
func (r *Resolver) Resolve(host, path, rawQuery string) Decision {
	host = normalizeHost(host)

	if sub := r.customSubDomain(host); sub != "" {
		return Decision{Action: Rewrite, Target: withQuery("/"+sub+path, rawQuery)}
	}

	switch {
	case path == "/sign-in" || path == "/sign-up":
		return Decision{Action: Redirect, Target: AgencySignIn}
	case path == "/" || (path == sitePath && host == r.rootDomain):
		return Decision{Action: Rewrite, Target: withQuery(sitePath, rawQuery)}
	case strings.HasPrefix(path, "/agency") || strings.HasPrefix(path, "/subaccount"):
		return Decision{Action: Rewrite, Target: withQuery(path, rawQuery)}
	}

	return Decision{Action: NoAction}
}

// customSubDomain strips the root domain suffix from host. A host outside the
// root domain is returned whole, it is a custom domain.
func (r *Resolver) customSubDomain(host string) string {
	if host == "" || host == r.rootDomain {
		return ""
	}

	sub := strings.TrimSuffix(host, r.rootDomain)
	return strings.TrimSuffix(sub, ".")
}

func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))

	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	return strings.TrimSuffix(host, ".")
}

func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}
