// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"net/http"
	"strings"

	"github.com/canonical/agency-service/internal/logging"
)

type Middleware struct {
	resolver *Resolver
	logger   logging.LoggerInterface
}

func NewMiddleware(resolver *Resolver, logger logging.LoggerInterface) *Middleware {
	return &Middleware{resolver: resolver, logger: logger}
}

// Route applies the resolver decision before any handler runs. Redirects go
// to the bare target, rewrites keep the query untouched.
func (m *Middleware) Route(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := m.resolver.Resolve(r.Host, r.URL.Path, r.URL.RawQuery)

		switch d.Action {
		case Redirect:
			http.Redirect(w, r, d.Target, http.StatusTemporaryRedirect)
			return
		case Rewrite:
			m.logger.Debugf("rewriting %s%s to %s", r.Host, r.URL.Path, d.Target)
			r = rewrite(r, d)
		}

		next.ServeHTTP(w, r)
	})
}

// rewrite points a clone of r at the decision target. The target path is
// built from the decoded request path, so it is never parsed again: the
// escaped form is derived from the original RawPath when the request had
// one, otherwise from the decoded path.
func rewrite(r *http.Request, d Decision) *http.Request {
	path := d.Target
	if q := r.URL.RawQuery; q != "" {
		path = strings.TrimSuffix(path, "?"+q)
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	if raw := r.URL.RawPath; raw != "" && strings.HasSuffix(path, r.URL.Path) {
		r2.URL.RawPath = strings.TrimSuffix(path, r.URL.Path) + raw
	}

	r2.RequestURI = r2.URL.RequestURI()

	return r2
}
