package commands

import (
	"context"
	"errors"
	"fmt"

	"evdealer/internal/core/domain/model/user"
	"evdealer/internal/core/ports"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
)

// requireStaff loads the actor and checks the staff capability. An unknown
// actor is Forbidden rather than NotFound so callers cannot probe for user
// existence.
func requireStaff(ctx context.Context, users ports.UserRepository, actorID uuid.UUID, action string) (*user.User, error) {
	actor, err := users.Get(ctx, actorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewForbiddenError(action)
	}
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() {
		return nil, errs.NewForbiddenError(action)
	}
	return actor, nil
}

// requireOwnerOrStaff authorizes an action on an order owned by ownerID:
// the owner may always act, anyone else must carry the staff capability.
func requireOwnerOrStaff(ctx context.Context, users ports.UserRepository, actorID, ownerID uuid.UUID, action string) error {
	if actorID == ownerID {
		return nil
	}
	if _, err := requireStaff(ctx, users, actorID, action); err != nil {
		return err
	}
	return nil
}

// notFoundAsFatal converts a missing-object error into a fatal invariant
// violation. Used where the referenced row must exist because the aggregate
// being mutated still points at it.
func notFoundAsFatal(err error, what string, id uuid.UUID) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewFatalErrorWithCause(fmt.Sprintf("%s %s vanished mid-operation", what, id), err)
	}
	return err
}
