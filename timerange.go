package uuidv7

import (
	"encoding/binary"
	"fmt"
	"time"
)

// TimeRange holds the boundary identifiers of an inclusive time interval.
// Because UUIDv7 values sort by timestamp first, an index range scan between
// Start and End returns exactly the identifiers stamped inside the interval:
//
//	r := uuidv7.NewTimeRange(from, to)
//	rows, err := db.Query(`SELECT ... WHERE id BETWEEN ? AND ?`, r.Start, r.End)
type TimeRange struct {
	Start UUID
	End   UUID
}

// NewTimeRange returns the range covering every millisecond from start to end,
// both inclusive. Times are truncated to milliseconds. If end precedes start
// the range contains nothing.
func NewTimeRange(start, end time.Time) TimeRange {
	return NewTimeRangeMillis(start.UnixMilli(), end.UnixMilli())
}

// NewTimeRangeMillis is NewTimeRange for Unix millisecond timestamps.
func NewTimeRangeMillis(startMs, endMs int64) TimeRange {
	return TimeRange{
		Start: MinForTimestamp(startMs),
		End:   MaxForTimestamp(endMs),
	}
}

// MinForTimestamp returns the smallest UUIDv7 with the given timestamp: zero
// sequence and zero random bits. ms is clamped to [0, MaxTimestamp].
// Boundary identifiers are comparison bounds, never stored as keys.
func MinForTimestamp(ms int64) UUID {
	return boundary(ms, 0, 0)
}

// MaxForTimestamp returns the largest UUIDv7 with the given timestamp: every
// sequence and random bit set. ms is clamped to [0, MaxTimestamp].
func MaxForTimestamp(ms int64) UUID {
	return boundary(ms, MaxSequence, 1<<62-1)
}

func boundary(ms int64, seq uint16, random uint64) UUID {
	ms = min(max(ms, 0), MaxTimestamp)

	var u UUID
	binary.BigEndian.PutUint64(u[0:8], uint64(ms)<<16|uint64(VersionTimeSorted)<<12|uint64(seq))
	binary.BigEndian.PutUint64(u[8:16], 0b10<<62|random)
	return u
}

// Contains reports whether Start <= u <= End under unsigned 128-bit comparison.
func (r TimeRange) Contains(u UUID) bool {
	return u.Compare(r.Start) >= 0 && u.Compare(r.End) <= 0
}

func (r TimeRange) String() string {
	return fmt.Sprintf("TimeRange{start=%s, end=%s}", r.Start, r.End)
}
