package queries

import (
	"errors"
	"time"

	"evdealer/internal/pkg/guard"
)

var (
	ErrGetTotalOrdersCountQueryIsNotConstructed = errors.New(
		"GetTotalOrdersCountQuery must be created via NewGetTotalOrdersCountQuery constructor",
	)
)

// GetTotalOrdersCountQuery counts non-deleted orders regardless of status,
// optionally restricted to a creation-date window.
type GetTotalOrdersCountQuery struct {
	from *time.Time
	to   *time.Time

	guard guard.ConstructorGuard
}

// NewGetTotalOrdersCountQuery creates an order count query over the optional
// window.
func NewGetTotalOrdersCountQuery(from, to *time.Time) (GetTotalOrdersCountQuery, error) {
	return GetTotalOrdersCountQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetTotalOrdersCountQuery) From() *time.Time { return q.from }
func (q GetTotalOrdersCountQuery) To() *time.Time   { return q.to }

// Validate ensures the query was created through the constructor.
func (q GetTotalOrdersCountQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalOrdersCountQueryIsNotConstructed)
}
