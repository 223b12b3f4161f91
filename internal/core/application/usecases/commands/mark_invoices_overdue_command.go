package commands

import (
	"errors"
	"time"

	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"
)

var ErrMarkInvoicesOverdueCommandIsNotConstructed = errors.New(
	"MarkInvoicesOverdueCommand must be created via NewMarkInvoicesOverdueCommand constructor",
)

// MarkInvoicesOverdueCommand sweeps pending invoices created before the
// cutoff into Overdue. Driven by the scheduled job, not by user requests.
type MarkInvoicesOverdueCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewMarkInvoicesOverdueCommand creates an overdue sweep command.
func NewMarkInvoicesOverdueCommand(cutoff time.Time) (MarkInvoicesOverdueCommand, error) {
	if cutoff.IsZero() {
		return MarkInvoicesOverdueCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return MarkInvoicesOverdueCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInvoicesOverdueCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoicesOverdueCommandIsNotConstructed)
}

// Cutoff returns the moment before which pending invoices count as overdue.
func (c MarkInvoicesOverdueCommand) Cutoff() time.Time {
	return c.cutoff
}
