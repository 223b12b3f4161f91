// Package jobs contains the background jobs of the service, scheduled with
// cron and wired to command handlers at composition time.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"evdealer/internal/core/application/usecases/commands"
	"evdealer/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// InvoiceOverdueJob periodically sweeps invoices that stayed Pending past
// the payment deadline and marks them Overdue.
type InvoiceOverdueJob struct {
	handler      commands.MarkInvoicesOverdueCommandHandler
	clock        ports.Clock
	cron         *cron.Cron
	schedule     string
	overdueAfter time.Duration
	logger       *slog.Logger
}

// NewInvoiceOverdueJob creates the overdue sweep job. The schedule is a
// standard five-field cron expression; overdueAfter is how long an invoice
// may stay Pending before the sweep marks it Overdue.
func NewInvoiceOverdueJob(
	handler commands.MarkInvoicesOverdueCommandHandler,
	clock ports.Clock,
	schedule string,
	overdueAfter time.Duration,
	logger *slog.Logger,
) *InvoiceOverdueJob {
	return &InvoiceOverdueJob{
		handler:      handler,
		clock:        clock,
		cron:         cron.New(),
		schedule:     schedule,
		overdueAfter: overdueAfter,
		logger:       logger.With("component", "invoice_overdue_job"),
	}
}

// Start schedules the sweep and begins running it.
func (j *InvoiceOverdueJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cutoff := j.clock.Now().Add(-j.overdueAfter)

		cmd, cmdErr := commands.NewMarkInvoicesOverdueCommand(cutoff)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "invoice overdue sweep misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "invoice overdue sweep failed", "error", handleErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "invoice overdue job started",
		slog.String("schedule", j.schedule),
		slog.Duration("overdue_after", j.overdueAfter))
	return nil
}

// Stop stops the sweep.
func (j *InvoiceOverdueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "invoice overdue job stopped")
}
