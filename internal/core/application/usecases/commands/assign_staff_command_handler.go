package commands

import (
	"context"
	"errors"

	"evdealer/internal/core/ports"
	"evdealer/internal/pkg/errs"
)

// AssignStaffCommandHandler handles assigning a staff member to an order.
type AssignStaffCommandHandler struct {
	uowFactory StaffOrderUoWFactory
	clock      ports.Clock
}

// NewAssignStaffCommandHandler creates a handler for staff assignment.
func NewAssignStaffCommandHandler(uowFactory StaffOrderUoWFactory, clock ports.Clock) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the staff assignment command.
//
// Fails with Forbidden for non-staff actors and with NotFound when the
// assignee is missing, soft-deleted or lacks the staff capability.
func (h AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) error {
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

	userRepo := uow.UserRepository()
	if _, err := requireStaff(ctx, userRepo, cmd.ActorID(), "assign staff"); err != nil {
		return err
	}

	assignee, err := userRepo.Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}
	if !assignee.IsStaff() {
		return errs.NewObjectNotFoundErrorWithCause("staffID", cmd.StaffID(),
			errors.New("user lacks the staff capability"))
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignStaff(cmd.ActorID(), cmd.StaffID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
