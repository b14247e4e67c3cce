// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"errors"
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurityEvents(t *testing.T) {
	l := NewNoopLogger()

	l.Security().SystemStartup()
	l.Security().AuthzFailure("user-1", "agency:a1", "no grant")
	l.Security().RoleSyncInconsistency("user-1", "AGENCY_ADMIN", errors.New("boom"))
	l.Security().SystemShutdown()

	if err := l.Sync(); err != nil {
		t.Fatalf("unexpected error syncing noop logger: %v", err)
	}
}
