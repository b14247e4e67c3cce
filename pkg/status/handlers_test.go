// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newMux(db DBClientInterface) *chi.Mux {
	logger := logging.NewNoopLogger()
	mux := chi.NewMux()
	NewAPI(db, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)
	return mux
}

func TestAlive(t *testing.T) {
	w := httptest.NewRecorder()
	newMux(pinger{errors.New("down")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "database reachable", status: http.StatusOK},
		{name: "database down", err: errors.New("connection refused"), status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newMux(pinger{tt.err}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

			require.Equal(t, tt.status, w.Code)

			if tt.err == nil {
				var resp httptypes.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "ready", resp.Message)
			}
		})
	}
}
