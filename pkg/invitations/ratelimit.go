// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultLimiterIdle = 10 * time.Minute

// AgencyLimiter keeps one token bucket per agency so a single tenant cannot
// flood the identity provider with invitations. It is consulted only after
// the caller passed authorization, buckets idle for longer than idle are
// evicted.
type AgencyLimiter struct {
	limit rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	agencies  map[string]*agencyBucket
	lastSweep time.Time
}

type agencyBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewAgencyLimiter(perSecond float64, burst int, idle time.Duration) *AgencyLimiter {
	if idle <= 0 {
		idle = defaultLimiterIdle
	}

	return &AgencyLimiter{
		limit:     rate.Limit(perSecond),
		burst:     burst,
		idle:      idle,
		now:       time.Now,
		agencies:  make(map[string]*agencyBucket),
		lastSweep: time.Now(),
	}
}

func (l *AgencyLimiter) Allow(agencyID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.idle {
		l.sweep(now)
	}

	b, ok := l.agencies[agencyID]
	if !ok {
		b = &agencyBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.agencies[agencyID] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

func (l *AgencyLimiter) sweep(now time.Time) {
	for id, b := range l.agencies {
		if now.Sub(b.lastSeen) > l.idle {
			delete(l.agencies, id)
		}
	}
	l.lastSweep = now
}

func (l *AgencyLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.agencies)
}
