package queries

import (
	"errors"
	"time"

	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its denormalized display fields,
// invoice, latest payment and delivery. Customers may only fetch their own
// orders; staff may fetch any.
type GetOrderQuery struct {
	orderID uuid.UUID
	actorID uuid.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order read.
func NewGetOrderQuery(orderID, actorID uuid.UUID) (GetOrderQuery, error) {
	if orderID == uuid.Nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	if actorID == uuid.Nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("actorID")
	}

	return GetOrderQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) OrderID() uuid.UUID { return q.orderID }
func (q GetOrderQuery) ActorID() uuid.UUID { return q.actorID }

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the detail read model for a single order.
type GetOrderQueryResponse struct {
	OrderSummary
	ShippingAddress string
	Notes           string
	CustomerPhone   string
	StaffID         *uuid.UUID
	UpdatedAt       *time.Time
	Invoice         *InvoiceView
	LatestPayment   *PaymentView
	Delivery        *DeliveryView
}
