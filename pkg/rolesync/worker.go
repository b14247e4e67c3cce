// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rolesync

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/canonical/agency-service/internal/logging"
)

// Worker runs the reconciler on a cron schedule.
type Worker struct {
	service  ServiceInterface
	schedule string
	cron     *cron.Cron

	logger logging.LoggerInterface
}

func NewWorker(service ServiceInterface, schedule string, logger logging.LoggerInterface) *Worker {
	return &Worker{
		service:  service,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger,
	}
}

// Start schedules the reconciler. Passes use ctx, cancel it to abort a
// running pass.
func (w *Worker) Start(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.schedule, func() { w.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("invalid role sync schedule %q: %w", w.schedule, err)
	}

	w.cron.Start()
	w.logger.Infof("role sync reconciler scheduled %s", w.schedule)

	return nil
}

// Stop waits for a running pass to finish.
func (w *Worker) Stop() {
	<-w.cron.Stop().Done()
}

func (w *Worker) RunOnce(ctx context.Context) {
	n, err := w.service.Reconcile(ctx)
	if err != nil {
		w.logger.Errorf("role sync pass failed: %v", err)
		return
	}

	if n > 0 {
		w.logger.Infof("role sync pass confirmed %d roles", n)
	}
}
