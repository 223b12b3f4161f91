package queries

import (
	"errors"
	"time"

	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrListAllOrdersQueryIsNotConstructed = errors.New(
		"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
	)
)

// OrderFilter narrows the staff-wide order listing. All fields are optional;
// zero values mean "no restriction". Search is a case-insensitive substring
// match over the order number, customer name and customer email.
type OrderFilter struct {
	CustomerID *uuid.UUID
	StaffID    *uuid.UUID
	Status     *order.Status
	From       *time.Time
	To         *time.Time
	Search     string
}

// Validate rejects a filter carrying an unknown status value.
func (f OrderFilter) Validate() error {
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ListAllOrdersQuery lists orders across all customers. Staff only.
type ListAllOrdersQuery struct {
	actorID    uuid.UUID
	filter     OrderFilter
	pageNumber int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewListAllOrdersQuery creates a staff-wide order listing query.
// Paging inputs are clamped to the supported range.
func NewListAllOrdersQuery(
	actorID uuid.UUID,
	filter OrderFilter,
	pageNumber, pageSize int,
) (ListAllOrdersQuery, error) {
	if actorID == uuid.Nil {
		return ListAllOrdersQuery{}, errs.NewValueIsRequiredError("actorID")
	}
	if err := filter.Validate(); err != nil {
		return ListAllOrdersQuery{}, err
	}

	pageNumber, pageSize = NormalizePage(pageNumber, pageSize)
	return ListAllOrdersQuery{
		actorID:    actorID,
		filter:     filter,
		pageNumber: pageNumber,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListAllOrdersQuery) ActorID() uuid.UUID  { return q.actorID }
func (q ListAllOrdersQuery) Filter() OrderFilter { return q.filter }
func (q ListAllOrdersQuery) PageNumber() int     { return q.pageNumber }
func (q ListAllOrdersQuery) PageSize() int       { return q.pageSize }

// Validate ensures the query was created through the constructor.
func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}
