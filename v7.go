package uuidv7

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// DefaultBackoff is how long a Generator sleeps before re-reading the clock
// once the sequence space of the current millisecond is used up.
const DefaultBackoff = time.Millisecond

// Generator is a UUIDv7 generation context. It remembers the last timestamp it
// used and a 12-bit sequence so that identifiers produced within the same
// millisecond are strictly increasing.
//
// A Generator is not safe for concurrent use: ordering is guaranteed per
// Generator, so give each goroutine its own. The package-level functions share
// a locked default Generator.
type Generator struct {
	lastTimestamp int64
	sequence      uint16

	randReader io.Reader
	now        func() time.Time
	backoff    time.Duration
	logger     *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandReader sets the random source used for sequence seeds and the
// random payload. It defaults to crypto/rand.
func WithRandReader(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.randReader = r
		}
	}
}

// WithClock sets the wall clock consulted by New and by the exhaustion wait.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithBackoff sets the sleep between clock reads while waiting for the next
// millisecond after sequence exhaustion.
func WithBackoff(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.backoff = d
		}
	}
}

// WithLogger sets the logger used for exhaustion and clock regression events.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a new UUIDv7 generator with crypto/rand as the random source
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		lastTimestamp: -1,
		randReader:    rand.Reader,
		now:           time.Now,
		backoff:       DefaultBackoff,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGeneratorWithReader creates a new UUIDv7 generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGenerator(WithRandReader(r))
}

// New generates a new UUIDv7 with the current timestamp.
func (g *Generator) New() (UUID, error) {
	return g.NewContext(context.Background())
}

// NewContext is like New but gives up waiting for the next millisecond when
// ctx is done.
func (g *Generator) NewContext(ctx context.Context) (UUID, error) {
	return g.generate(ctx, g.now().UnixMilli())
}

// NewWithTime generates a UUIDv7 for t, truncated to UTC epoch milliseconds.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	return g.generate(context.Background(), t.UnixMilli())
}

// NewWithTimestamp generates a UUIDv7 for the given Unix time in milliseconds.
//
// A timestamp older than the last one used by g fails with a
// *ClockRegressionError and leaves g unchanged. A repeated timestamp advances
// the sequence; once the 4096 values of that millisecond are used up the call
// sleeps and retries with the current clock instead of overflowing.
func (g *Generator) NewWithTimestamp(ms int64) (UUID, error) {
	return g.generate(context.Background(), ms)
}

// NewWithTimestampContext is like NewWithTimestamp but stops waiting for the
// next millisecond when ctx is done, returning ctx.Err().
func (g *Generator) NewWithTimestampContext(ctx context.Context, ms int64) (UUID, error) {
	return g.generate(ctx, ms)
}

// NewBatch generates count identifiers from a single clock reading.
// A non-positive count returns an empty slice.
func (g *Generator) NewBatch(count int) ([]UUID, error) {
	return g.NewBatchContext(context.Background(), count)
}

// NewBatchContext is like NewBatch but honours ctx while waiting on sequence exhaustion.
func (g *Generator) NewBatchContext(ctx context.Context, count int) ([]UUID, error) {
	if count <= 0 {
		return []UUID{}, nil
	}

	ids := make([]UUID, count)
	ms := g.now().UnixMilli()
	for i := range ids {
		// exhaustion may have moved the generator past the snapshot
		ts := ms
		if i > 0 && g.lastTimestamp > ts {
			ts = g.lastTimestamp
		}
		id, err := g.generate(ctx, ts)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// NewAfter generates an identifier that compares strictly greater than after.
// When after carries a future timestamp whose sequence space runs out, the
// result moves to the following millisecond instead of waiting for the clock.
func (g *Generator) NewAfter(after UUID) (UUID, error) {
	return g.NewAfterContext(context.Background(), after)
}

// NewAfterContext is like NewAfter but honours ctx while waiting on sequence exhaustion.
func (g *Generator) NewAfterContext(ctx context.Context, after UUID) (UUID, error) {
	ms, err := ExtractTimestamp(after)
	if err != nil {
		return Nil, err
	}
	ms = max(ms, g.now().UnixMilli(), g.lastTimestamp)

	for {
		// after is stamped ahead of the clock and its millisecond is used up:
		// the wall clock will not reach ms+1 soon, so step there directly.
		if ms == g.lastTimestamp && g.sequence == MaxSequence && ms > g.now().UnixMilli() {
			ms++
		}
		id, err := g.generate(ctx, ms)
		if err != nil {
			return Nil, err
		}
		if id.Compare(after) > 0 {
			return id, nil
		}
		// keep up with the generator if exhaustion moved it forward
		ms = max(ms, g.lastTimestamp)
	}
}

func (g *Generator) generate(ctx context.Context, ms int64) (UUID, error) {
	if ms < 0 || ms > MaxTimestamp {
		return Nil, fmt.Errorf("%w: %d", ErrTimestampOutOfRange, ms)
	}

	for {
		switch {
		case ms < g.lastTimestamp:
			g.logger.Warn("clock regression detected",
				zap.Int64("last_ms", g.lastTimestamp),
				zap.Int64("observed_ms", ms))
			return Nil, &ClockRegressionError{Last: g.lastTimestamp, Observed: ms}

		case ms == g.lastTimestamp:
			if g.sequence < MaxSequence {
				g.sequence++
				return g.build(ms, g.sequence)
			}
			g.logger.Debug("sequence exhausted, waiting for next millisecond",
				zap.Int64("timestamp_ms", ms),
				zap.Duration("backoff", g.backoff))
			next, err := g.waitNextMillis(ctx)
			if err != nil {
				return Nil, err
			}
			ms = next

		default:
			seq, err := g.randomSequence()
			if err != nil {
				return Nil, err
			}
			g.lastTimestamp = ms
			g.sequence = seq
			return g.build(ms, seq)
		}
	}
}

// waitNextMillis sleeps until the clock reads something other than
// lastTimestamp. An earlier reading is returned as is and rejected by the caller.
func (g *Generator) waitNextMillis(ctx context.Context) (int64, error) {
	timer := time.NewTimer(g.backoff)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-timer.C:
		}

		ms := g.now().UnixMilli()
		if ms != g.lastTimestamp {
			return ms, nil
		}
		timer.Reset(g.backoff)
	}
}

/*
 * The 12-bit rand_a field SHOULD be filled with random data; starting each
 * millisecond from a random point keeps the counter from leaking how many
 * identifiers were issued.
 */
func (g *Generator) randomSequence() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(g.randReader, b[:]); err != nil {
		return 0, fmt.Errorf("uuidv7: read sequence seed: %w", err)
	}
	return binary.BigEndian.Uint16(b[:]) & MaxSequence, nil
}

func (g *Generator) build(ms int64, seq uint16) (UUID, error) {
	var u UUID

	// timestamp (48 bits) | version (4 bits) | sequence (12 bits)
	binary.BigEndian.PutUint64(u[0:8], uint64(ms)<<16|uint64(VersionTimeSorted)<<12|uint64(seq))

	if _, err := io.ReadFull(g.randReader, u[8:]); err != nil {
		return Nil, fmt.Errorf("uuidv7: read random payload: %w", err)
	}

	// Set variant to RFC 4122 (10xx xxxx)
	u[8] = (u[8] & 0x3F) | 0x80

	return u, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuidv7.Must(generator.New())
func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return u
}
