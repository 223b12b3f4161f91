package commands

import (
	"context"
	"log/slog"

	"evdealer/internal/core/ports"
)

// MarkInvoicesOverdueCommandHandler flags pending invoices whose payment
// window has passed. Orders whose invoice cannot transition are skipped; the
// sweep is re-run by the scheduler, so a partial pass is acceptable.
type MarkInvoicesOverdueCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
	logger     *slog.Logger
}

// NewMarkInvoicesOverdueCommandHandler creates a handler for the overdue
// sweep.
func NewMarkInvoicesOverdueCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
	logger *slog.Logger,
) MarkInvoicesOverdueCommandHandler {
	return MarkInvoicesOverdueCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "mark_invoices_overdue"),
	}
}

// Handle processes the overdue sweep command.
func (h MarkInvoicesOverdueCommandHandler) Handle(ctx context.Context, cmd MarkInvoicesOverdueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetWithPendingInvoicesBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	marked := 0
	for _, o := range orders {
		invoice := o.Invoice()
		if invoice == nil {
			continue
		}
		if err := invoice.MarkOverdue(now); err != nil {
			continue
		}
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		marked++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "overdue invoice sweep finished",
		slog.Int("candidates", len(orders)),
		slog.Int("marked", marked))
	return nil
}
