package ports

import "time"

// Clock supplies the current time to every operation that stamps timestamps.
// It is injected instead of reading system time directly, which keeps status
// transitions deterministic and testable.
type Clock interface {
	Now() time.Time
}
