package queries

import (
	"errors"
	"time"

	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrListAllDeliveriesQueryIsNotConstructed = errors.New(
		"ListAllDeliveriesQuery must be created via NewListAllDeliveriesQuery constructor",
	)
)

// DeliveryFilter narrows the staff-wide delivery listing. The date range
// matches deliveries whose planned OR actual date falls inside the window.
// Search is a case-insensitive substring match over the order number,
// customer name and customer email.
type DeliveryFilter struct {
	Status *delivery.Status
	From   *time.Time
	To     *time.Time
	Search string
}

// Validate rejects a filter carrying an unknown status value.
func (f DeliveryFilter) Validate() error {
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ListAllDeliveriesQuery lists deliveries across all orders. Staff only.
type ListAllDeliveriesQuery struct {
	actorID    uuid.UUID
	filter     DeliveryFilter
	pageNumber int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewListAllDeliveriesQuery creates a staff-wide delivery listing query.
// Paging inputs are clamped to the supported range.
func NewListAllDeliveriesQuery(
	actorID uuid.UUID,
	filter DeliveryFilter,
	pageNumber, pageSize int,
) (ListAllDeliveriesQuery, error) {
	if actorID == uuid.Nil {
		return ListAllDeliveriesQuery{}, errs.NewValueIsRequiredError("actorID")
	}
	if err := filter.Validate(); err != nil {
		return ListAllDeliveriesQuery{}, err
	}

	pageNumber, pageSize = NormalizePage(pageNumber, pageSize)
	return ListAllDeliveriesQuery{
		actorID:    actorID,
		filter:     filter,
		pageNumber: pageNumber,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListAllDeliveriesQuery) ActorID() uuid.UUID     { return q.actorID }
func (q ListAllDeliveriesQuery) Filter() DeliveryFilter { return q.filter }
func (q ListAllDeliveriesQuery) PageNumber() int        { return q.pageNumber }
func (q ListAllDeliveriesQuery) PageSize() int          { return q.pageSize }

// Validate ensures the query was created through the constructor.
func (q ListAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListAllDeliveriesQueryIsNotConstructed)
}
