package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Janitor sweeps idle sessions on a cron schedule.
type Janitor struct {
	cron *cron.Cron
}

// StartJanitor accepts standard cron expressions and descriptors such as "@every 5m".
func StartJanitor(store *Store, schedule string, maxIdle time.Duration) (*Janitor, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(schedule, func() {
		if removed := store.Sweep(maxIdle); removed > 0 {
			slog.Info("swept idle sessions", "removed", removed, "remaining", store.Len())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	c.Start()
	slog.Info("session janitor started", "schedule", schedule, "max_idle", maxIdle)

	return &Janitor{cron: c}, nil
}

// Stop waits for a running sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
	slog.Info("session janitor stopped")
}
