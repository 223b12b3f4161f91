package queries

import (
	"errors"

	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrListMyOrdersQueryIsNotConstructed = errors.New(
		"ListMyOrdersQuery must be created via NewListMyOrdersQuery constructor",
	)
)

// ListMyOrdersQuery lists the acting customer's own orders, newest first.
type ListMyOrdersQuery struct {
	actorID    uuid.UUID
	pageNumber int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewListMyOrdersQuery creates a listing query scoped to the actor.
// Paging inputs are clamped to the supported range.
func NewListMyOrdersQuery(actorID uuid.UUID, pageNumber, pageSize int) (ListMyOrdersQuery, error) {
	if actorID == uuid.Nil {
		return ListMyOrdersQuery{}, errs.NewValueIsRequiredError("actorID")
	}

	pageNumber, pageSize = NormalizePage(pageNumber, pageSize)
	return ListMyOrdersQuery{
		actorID:    actorID,
		pageNumber: pageNumber,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListMyOrdersQuery) ActorID() uuid.UUID { return q.actorID }
func (q ListMyOrdersQuery) PageNumber() int    { return q.pageNumber }
func (q ListMyOrdersQuery) PageSize() int      { return q.pageSize }

// Validate ensures the query was created through the constructor.
func (q ListMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMyOrdersQueryIsNotConstructed)
}
