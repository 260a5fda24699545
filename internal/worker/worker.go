// Package worker regenerates the calendar feed on a cron schedule and
// publishes it to the HTTP server.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/tartampluch/go-vivace/internal/config"
)

// FeedBuilder renders the iCalendar feed. engine.Generator implements it.
type FeedBuilder interface {
	Feed(ctx context.Context, s config.Settings) ([]byte, error)
}

// Publisher receives each successfully built feed. server.CalendarServer
// implements it.
type Publisher interface {
	Update(data []byte)
}

// Scheduler drives periodic feed refreshes.
type Scheduler struct {
	builder   FeedBuilder
	publisher Publisher
	settings  config.Settings
}

// New returns a Scheduler working on the settings snapshot s.
func New(b FeedBuilder, p Publisher, s config.Settings) *Scheduler {
	return &Scheduler{builder: b, publisher: p, settings: s}
}

// Refresh builds the feed once and publishes it. On failure the previously
// published feed stays in place.
func (w *Scheduler) Refresh(ctx context.Context) error {
	data, err := w.builder.Feed(ctx, w.settings)
	if err != nil {
		return err
	}
	w.publisher.Update(data)
	return nil
}

// Run refreshes immediately, then on every tick of the refresh_cron
// schedule, until ctx is cancelled. It waits for a running refresh before
// returning.
func (w *Scheduler) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	schedule := w.settings.RefreshCron
	if schedule == "" {
		schedule = config.DefaultRefreshCron
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { w.refreshLogged(ctx, log) }); err != nil {
		return fmt.Errorf("%s: %q: %w", config.ErrSchedule, schedule, err)
	}

	w.refreshLogged(ctx, log)

	c.Start()
	log.Info(config.MsgWorkerStart, config.LogKeySchedule, schedule)

	<-ctx.Done()
	log.Info(config.MsgWorkerStop)
	<-c.Stop().Done()
	return nil
}

func (w *Scheduler) refreshLogged(ctx context.Context, log *slog.Logger) {
	if ctx.Err() != nil {
		return
	}
	if err := w.Refresh(ctx); err != nil {
		log.Error(config.MsgRefreshFailed, config.LogKeyError, err)
	}
}
