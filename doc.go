// Package uuidv7 generates and inspects time-ordered UUID version 7 identifiers
// (RFC 9562) for use as database primary keys.
//
// A UUIDv7 starts with a 48-bit Unix millisecond timestamp, so identifiers sort
// by creation time under plain byte (or canonical string) comparison. That keeps
// B-tree inserts append-mostly and turns "records created between A and B" into
// an index range scan.
//
// Layout, most significant bit first:
//   - 48 bits: Unix timestamp in milliseconds
//   - 4 bits: version (0111)
//   - 12 bits: sequence counter for sub-millisecond ordering
//   - 2 bits: variant (10)
//   - 62 bits: cryptographically secure random data
//
// Basic Usage:
//
//	id, err := uuidv7.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	ms, err := uuidv7.ExtractTimestamp(id)
//
// Generation contexts:
//
// A Generator remembers the last millisecond it used and a 12-bit counter that
// starts at a random value each millisecond and increments for every further
// identifier in that millisecond. When the counter runs out, the Generator
// sleeps briefly and continues in the next millisecond. A timestamp older than
// the last one used is rejected with a *ClockRegressionError.
//
// A Generator is owned by one goroutine:
//
//	gen := uuidv7.NewGenerator()
//	for _, rec := range records {
//	    rec.ID, err = gen.New()
//	    ...
//	}
//
// The package-level functions share a mutex-guarded default Generator.
//
// Range queries:
//
//	r := uuidv7.NewTimeRange(from, to)
//	rows, err := db.Query(`SELECT * FROM events WHERE id BETWEEN ? AND ?`, r.Start, r.End)
package uuidv7
