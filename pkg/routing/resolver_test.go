// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver("example.com")

	tests := []struct {
		name     string
		host     string
		path     string
		query    string
		expected Decision
	}{
		{
			name:     "custom subdomain rewrites",
			host:     "acme.example.com",
			path:     "/dashboard",
			query:    "tab=1",
			expected: Decision{Action: Rewrite, Target: "/acme/dashboard?tab=1"},
		},
		{
			name:     "custom subdomain wins over sign-in",
			host:     "acme.example.com",
			path:     "/sign-in",
			expected: Decision{Action: Rewrite, Target: "/acme/sign-in"},
		},
		{
			name:     "port and case are ignored",
			host:     "ACME.Example.com:3000",
			path:     "/",
			expected: Decision{Action: Rewrite, Target: "/acme/"},
		},
		{
			name:     "foreign host is a custom domain",
			host:     "shop.io",
			path:     "/x",
			expected: Decision{Action: Rewrite, Target: "/shop.io/x"},
		},
		{
			name:     "sign-in redirects",
			host:     "example.com",
			path:     "/sign-in",
			expected: Decision{Action: Redirect, Target: "/agency/sign-in"},
		},
		{
			name:     "sign-up redirects",
			host:     "example.com",
			path:     "/sign-up",
			query:    "ref=ad",
			expected: Decision{Action: Redirect, Target: "/agency/sign-in"},
		},
		{
			name:     "root serves the site",
			host:     "example.com",
			path:     "/",
			query:    "utm=a%20b",
			expected: Decision{Action: Rewrite, Target: "/site?utm=a%20b"},
		},
		{
			name:     "site on root domain",
			host:     "example.com:443",
			path:     "/site",
			expected: Decision{Action: Rewrite, Target: "/site"},
		},
		{
			name:     "agency pass-through keeps query verbatim",
			host:     "example.com",
			path:     "/agency/a1/launchpad",
			query:    "code=x%2Fy&state=1",
			expected: Decision{Action: Rewrite, Target: "/agency/a1/launchpad?code=x%2Fy&state=1"},
		},
		{
			name:     "subaccount pass-through",
			host:     "example.com",
			path:     "/subaccount/s1",
			expected: Decision{Action: Rewrite, Target: "/subaccount/s1"},
		},
		{
			name:     "api routes are untouched",
			host:     "example.com",
			path:     "/api/v0/status",
			expected: Decision{Action: NoAction},
		},
		{
			name:     "static assets are untouched",
			host:     "example.com",
			path:     "/favicon.ico",
			expected: Decision{Action: NoAction},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.host, tt.path, tt.query))
		})
	}
}

func TestResolver_CustomSubDomainProperty(t *testing.T) {
	r := NewResolver("example.com")

	prefixes := []string{"a", "acme", "eu.acme"}
	paths := []string{"/", "/sign-in", "/sign-up", "/site", "/agency", "/api/v0/x"}
	queries := []string{"", "q=1", "a=%20&b=%2F"}

	for _, prefix := range prefixes {
		for _, path := range paths {
			for _, query := range queries {
				host := prefix + ".example.com"

				expected := "/" + prefix + path
				if query != "" {
					expected += "?" + query
				}

				assert.Equal(t, Decision{Action: Rewrite, Target: expected}, r.Resolve(host, path, query), fmt.Sprintf("%s %s %s", host, path, query))
			}
		}
	}
}

func TestResolver_AuthRedirectProperty(t *testing.T) {
	r := NewResolver("example.com")

	for _, host := range []string{"example.com", "EXAMPLE.COM", "example.com:8080", "example.com."} {
		for _, path := range []string{"/sign-in", "/sign-up"} {
			assert.Equal(t, Decision{Action: Redirect, Target: AgencySignIn}, r.Resolve(host, path, "x=1"))
		}
	}
}

func TestResolver_SiteProperty(t *testing.T) {
	r := NewResolver("example.com")

	for _, q := range []string{"", "a=1"} {
		expected := "/site"
		if q != "" {
			expected += "?" + q
		}

		assert.Equal(t, Decision{Action: Rewrite, Target: expected}, r.Resolve("example.com", "/", q))
		assert.Equal(t, Decision{Action: Rewrite, Target: expected}, r.Resolve("example.com", "/site", q))
	}
}
