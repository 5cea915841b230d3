// Package schedule runs a job on a fixed interval until its context ends.
package schedule

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Job func(ctx context.Context) error

// Every runs job immediately and then once per interval. Runs never
// overlap: a tick that arrives during a run is dropped. A failed run is
// logged and polling continues. Every returns ctx.Err() once ctx is done.
func Every(ctx context.Context, interval time.Duration, job Job, log *logrus.Logger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	run := func() {
		if err := job(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("scheduled run failed")
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			run()
		}
	}
}
