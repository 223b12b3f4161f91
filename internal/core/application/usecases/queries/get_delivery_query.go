package queries

import (
	"errors"

	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
)

// GetDeliveryQuery retrieves one delivery either by its own identifier or by
// the owning order's identifier. Exactly one lookup key must be provided.
// Customers may only fetch deliveries of their own orders; staff any.
type GetDeliveryQuery struct {
	deliveryID *uuid.UUID
	orderID    *uuid.UUID
	actorID    uuid.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a single-delivery read keyed by delivery ID or
// order ID.
func NewGetDeliveryQuery(deliveryID, orderID *uuid.UUID, actorID uuid.UUID) (GetDeliveryQuery, error) {
	if actorID == uuid.Nil {
		return GetDeliveryQuery{}, errs.NewValueIsRequiredError("actorID")
	}
	if deliveryID == nil && orderID == nil {
		return GetDeliveryQuery{}, errs.NewValueIsRequiredError("deliveryID or orderID")
	}
	if deliveryID != nil && orderID != nil {
		return GetDeliveryQuery{}, errs.NewValueIsInvalidErrorWithCause("deliveryID",
			errors.New("provide either a delivery ID or an order ID, not both"))
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		orderID:    orderID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryQuery) DeliveryID() *uuid.UUID { return q.deliveryID }
func (q GetDeliveryQuery) OrderID() *uuid.UUID    { return q.orderID }
func (q GetDeliveryQuery) ActorID() uuid.UUID     { return q.actorID }

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}
