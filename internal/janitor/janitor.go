// Package janitor removes rows orphaned by an interrupted cascade delete.
// Category deletion removes events and shares before the category itself
// inside one transaction, so orphans should never occur; the sweep is the
// backstop that keeps the tables consistent if they ever do.
package janitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GinsengJuice/CalendarApp/internal/database"
)

const defaultSchedule = "@hourly"

type Janitor struct {
	queries  *database.Queries
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

func New(queries *database.Queries, schedule string) *Janitor {
	if schedule == "" {
		schedule = defaultSchedule
	}
	return &Janitor{
		queries:  queries,
		cron:     cron.New(),
		schedule: schedule,
		logger:   slog.Default(),
	}
}

// Start schedules the recurring sweep and runs one immediately so a
// restart after a crashed cascade does not wait a full interval.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		j.Sweep(ctx)
	})
	if err != nil {
		return err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		j.Sweep(ctx)
	}()

	j.cron.Start()
	j.logger.Info("janitor started", slog.String("schedule", j.schedule))
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

// Sweep deletes events and shares whose category no longer exists,
// events first so a partially-swept state never widens visibility.
func (j *Janitor) Sweep(ctx context.Context) (eventsRemoved, sharesRemoved int64) {
	var err error

	eventsRemoved, err = j.queries.DeleteOrphanEvents(ctx)
	if err != nil {
		j.logger.Error("janitor could not delete orphan events", slog.String("error", err.Error()))
		return eventsRemoved, sharesRemoved
	}

	sharesRemoved, err = j.queries.DeleteOrphanShares(ctx)
	if err != nil {
		j.logger.Error("janitor could not delete orphan shares", slog.String("error", err.Error()))
		return eventsRemoved, sharesRemoved
	}

	if eventsRemoved > 0 || sharesRemoved > 0 {
		j.logger.Warn("janitor removed orphaned rows",
			slog.Int64("events", eventsRemoved),
			slog.Int64("shares", sharesRemoved),
		)
	}
	return eventsRemoved, sharesRemoved
}
