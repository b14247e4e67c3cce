// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// NewNoopLogger discards application and security events alike.
func NewNoopLogger() *Logger {
	base := zap.NewNop()

	return &Logger{
		SugaredLogger: base.Sugar(),
		security:      newSecurityLogger(base),
	}
}
