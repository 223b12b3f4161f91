package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"evdealer/internal/core/application/usecases/commands"
	"evdealer/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	invoiceOverdueJob *InvoiceOverdueJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	markInvoicesOverdueHandler commands.MarkInvoicesOverdueCommandHandler,
	clock ports.Clock,
	overdueSchedule string,
	overdueAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		invoiceOverdueJob: NewInvoiceOverdueJob(
			markInvoicesOverdueHandler, clock, overdueSchedule, overdueAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.invoiceOverdueJob.Start(); err != nil {
		return fmt.Errorf("failed to start invoice overdue job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invoiceOverdueJob.Stop()
}
