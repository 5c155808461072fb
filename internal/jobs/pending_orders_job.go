package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordersystem/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersHandler reads the current pending-order backlog.
type PendingOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.PendingOrderResponse, error)
}

// PendingOrdersJob periodically reports the pending-order backlog so a
// growing queue of unprocessed orders shows up in the logs.
type PendingOrdersJob struct {
	handler PendingOrdersHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a job that samples the backlog once a minute.
func NewPendingOrdersJob(handler PendingOrdersHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start schedules the backlog report.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the backlog report.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}

func (j *PendingOrdersJob) report() {
	ctx := context.Background()

	pending, err := j.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
		return
	}

	if len(pending) == 0 {
		j.logger.DebugContext(ctx, "No pending orders")
		return
	}

	oldest := pending[0].CreatedAt
	for _, p := range pending[1:] {
		if p.CreatedAt.Before(oldest) {
			oldest = p.CreatedAt
		}
	}

	j.logger.InfoContext(ctx, "Pending order backlog",
		"count", len(pending),
		"oldest_age", time.Since(oldest).Round(time.Second).String(),
	)
}
