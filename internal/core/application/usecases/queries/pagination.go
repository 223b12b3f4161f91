// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read denormalized rows straight from
// the database, returning read models shaped for the caller.
package queries

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Page bundles one page of a filtered listing together with the total number
// of rows matching the filter, so callers can render paging controls.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	PageNumber int
	PageSize   int
}

// NormalizePage clamps raw paging inputs to the supported range.
// Page numbers below 1 become 1; page sizes outside [1, 100] fall back to
// the default of 10. Filtering always happens before counting and paging.
func NormalizePage(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return pageNumber, pageSize
}

func pageOffset(pageNumber, pageSize int) int {
	return (pageNumber - 1) * pageSize
}
