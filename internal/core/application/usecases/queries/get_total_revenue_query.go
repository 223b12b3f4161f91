package queries

import (
	"errors"
	"time"

	"evdealer/internal/pkg/guard"
)

var (
	ErrGetTotalRevenueQueryIsNotConstructed = errors.New(
		"GetTotalRevenueQuery must be created via NewGetTotalRevenueQuery constructor",
	)
)

// GetTotalRevenueQuery sums the total amount of non-deleted orders that are
// Confirmed or Delivered, optionally restricted to a creation-date window.
// Pending and Cancelled orders never count toward revenue.
type GetTotalRevenueQuery struct {
	from *time.Time
	to   *time.Time

	guard guard.ConstructorGuard
}

// NewGetTotalRevenueQuery creates a revenue query over the optional window.
func NewGetTotalRevenueQuery(from, to *time.Time) (GetTotalRevenueQuery, error) {
	return GetTotalRevenueQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetTotalRevenueQuery) From() *time.Time { return q.from }
func (q GetTotalRevenueQuery) To() *time.Time   { return q.to }

// Validate ensures the query was created through the constructor.
func (q GetTotalRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalRevenueQueryIsNotConstructed)
}
