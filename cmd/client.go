// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/identity"
)

// apiClient talks to a running agency service over its JSON API.
type apiClient struct {
	endpoint string
	userID   string
	token    string

	http *http.Client
}

func newAPIClient(endpoint, userID, token string) *apiClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &apiClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		userID:   userID,
		token:    token,
		http: &http.Client{
			Timeout: 30 * time.Second,
			// entry points answer with redirects the caller wants to see
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// getClient builds a client from the persistent flags.
func getClient() *apiClient {
	return newAPIClient(httpEndpoint, userID, bearerToken)
}

// do sends in as JSON and decodes the data field of the response envelope
// into out. Either may be nil.
func (c *apiClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(identity.HeaderName, c.userID)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 300 {
		if loc := resp.Header.Get("Location"); loc != "" {
			return fmt.Errorf("api redirected (status %d) to %s", resp.StatusCode, loc)
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}

	envelope := httptypes.Response{Data: out}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
