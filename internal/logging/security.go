// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityEventKey = "event"
	appID            = "agency-service"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system started", zap.String(securityEventKey, "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system stopped", zap.String(securityEventKey, "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(actor, resource, reason string) {
	s.l.Warn(
		"access denied",
		zap.String(securityEventKey, "authz_fail:"+actor+","+resource),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzSuccess(actor, resource string) {
	s.l.Debug("access granted", zap.String(securityEventKey, "authz_success:"+actor+","+resource))
}

func (s *SecurityLogger) AdminAction(actor, action, resource string) {
	s.l.Info(
		"administrative action",
		zap.String(securityEventKey, "authz_admin:"+actor+","+action),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) PrivilegeEscalationBlocked(actor, resource, role string) {
	s.l.Error(
		"privilege escalation blocked",
		zap.String(securityEventKey, "privilege_permissions_changed:"+actor+","+resource),
		zap.String("role", role),
	)
}

// RoleSyncInconsistency reports a store role that could not be written to
// the identity provider and now needs reconciliation.
func (s *SecurityLogger) RoleSyncInconsistency(userID, role string, err error) {
	s.l.Error(
		"role metadata out of sync with identity provider",
		zap.String(securityEventKey, "role_sync_inconsistent:"+userID+","+role),
		zap.Error(err),
	)
}

func newSecurityLogger(base *zap.Logger) *SecurityLogger {
	return &SecurityLogger{
		l: base.Named("security").With(zap.String("appid", appID), zap.String("type", "security")),
	}
}
