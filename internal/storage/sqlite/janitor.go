package sqlite

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/fleetcore/helmsman/pkg/log"
)

// Janitor runs the hourly purge of expired sessions. Implements the
// srv.Service lifecycle.
type Janitor struct {
	backend *Backend
	cron    *cron.Cron
}

func NewJanitor(backend *Backend) *Janitor {
	return &Janitor{
		backend: backend,
		cron:    cron.New(),
	}
}

func (j *Janitor) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	_, err := j.cron.AddFunc("@hourly", func() {
		purged, err := j.backend.PurgeExpired(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("session purge failed")
			return
		}
		if purged > 0 {
			logger.Info().Int64("purged", purged).Msg("expired sessions removed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	return nil
}

func (j *Janitor) Shutdown(ctx context.Context) error {
	stopCtx := j.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	return nil
}
