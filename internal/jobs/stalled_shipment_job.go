package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalledShipmentJob periodically scans for active shipments whose status has
// not changed within the inactivity window and surfaces them in the log.
// The job is read-only: shipments are never mutated automatically.
type StalledShipmentJob struct {
	handler      queries.GetStalledShipmentsQueryHandler
	stalledAfter time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewStalledShipmentJob creates a job flagging shipments inactive for longer
// than stalledAfter. Runs every minute.
func NewStalledShipmentJob(
	handler queries.GetStalledShipmentsQueryHandler,
	stalledAfter time.Duration,
	logger *slog.Logger,
) *StalledShipmentJob {
	return &StalledShipmentJob{
		handler:      handler,
		stalledAfter: stalledAfter,
		cron:         cron.New(),
		logger:       logger.With("component", "stalled_shipment_job"),
	}
}

// Start begins the stalled shipment scan, running every minute.
func (j *StalledShipmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalledShipmentsQuery(j.stalledAfter)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stalled shipment job misconfigured", "error", queryErr)
			return
		}

		stalled, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stalled shipment scan failed", "error", handleErr)
			return
		}

		for _, s := range stalled {
			j.logger.WarnContext(ctx, "Shipment stalled",
				"shipment_id", s.ID.String(),
				"locker_code", s.LockerCode,
				"status", s.Status,
				"last_update", s.LastUpdate,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled shipment job started (running every minute)",
		"stalled_after", j.stalledAfter.String())
	return nil
}

// Stop stops the stalled shipment job.
func (j *StalledShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled shipment job stopped")
}
