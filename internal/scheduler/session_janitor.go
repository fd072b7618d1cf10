package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/novashop/novashop-backend/internal/app/session"
	"github.com/novashop/novashop-backend/pkg/logger"
)

// SessionJanitor periodically sweeps idle storefront sessions so the
// in-memory registry stays bounded.
type SessionJanitor struct {
	cron     *cron.Cron
	store    *session.Store
	maxIdle  time.Duration
	schedule string
}

func NewSessionJanitor(store *session.Store, maxIdle time.Duration, schedule string) *SessionJanitor {
	return &SessionJanitor{
		cron:     cron.New(),
		store:    store,
		maxIdle:  maxIdle,
		schedule: schedule,
	}
}

// Start registers and starts the sweep job.
func (j *SessionJanitor) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		removed := j.store.Sweep(j.maxIdle)
		logger.Debug("Session sweep completed", map[string]interface{}{
			"removed":  removed,
			"sessions": j.store.Count(),
		})
	})
	if err != nil {
		logger.Error("Failed to schedule session sweep", err, map[string]interface{}{
			"schedule": j.schedule,
		})
		return err
	}

	j.cron.Start()
	logger.Info("Session janitor started", map[string]interface{}{
		"schedule": j.schedule,
		"max_idle": j.maxIdle.String(),
	})
	return nil
}

// Stop stops the sweep job.
func (j *SessionJanitor) Stop() {
	j.cron.Stop()
	logger.Info("Session janitor stopped")
}
