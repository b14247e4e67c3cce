// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/agency-service/internal/logging"
)

const defaultServiceName = "agency-service"

// Config selects the span exporter. With both endpoints empty spans are
// printed to stdout.
type Config struct {
	ServiceName      string
	OtelGRPCEndpoint string
	OtelHTTPEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		ServiceName:      defaultServiceName,
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
		Enabled:          enabled,
	}
}

func NewNoopConfig() *Config {
	return &Config{ServiceName: defaultServiceName}
}

func (c *Config) service() string {
	if c.ServiceName == "" {
		return defaultServiceName
	}
	return c.ServiceName
}
