package uuidv7

import (
	"sync"
	"time"
)

// The package-level functions share one generation context. The clock is read
// while the lock is held, so concurrent callers of New never see a regression.
var (
	defaultMu        sync.Mutex
	defaultGenerator = NewGenerator()
)

// New generates a new UUIDv7 using the default generator.
func New() (UUID, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGenerator.New()
}

// NewV7 is an alias for New() for explicit version specification
func NewV7() (UUID, error) {
	return New()
}

// NewWithTime generates a UUIDv7 for t using the default generator.
// Because the default context is shared, a t older than identifiers already
// handed out elsewhere fails with a *ClockRegressionError; backfills should use
// their own Generator.
func NewWithTime(t time.Time) (UUID, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGenerator.NewWithTime(t)
}

// NewWithTimestamp is the millisecond form of NewWithTime.
func NewWithTimestamp(ms int64) (UUID, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGenerator.NewWithTimestamp(ms)
}

// NewBatch generates count identifiers from one clock reading using the default generator.
func NewBatch(count int) ([]UUID, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGenerator.NewBatch(count)
}

// NewAfter generates an identifier that sorts strictly after the given one
// using the default generator.
func NewAfter(after UUID) (UUID, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGenerator.NewAfter(after)
}
