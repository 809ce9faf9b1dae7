package uuidv7

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("uuidv7: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidv7: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version is not 7
	ErrInvalidVersion = errors.New("uuidv7: invalid UUID version (expected 7)")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("uuidv7: invalid UUID variant (expected RFC 4122)")

	// ErrNilUUID indicates that an identifier was required but the nil UUID was given
	ErrNilUUID = errors.New("uuidv7: nil UUID")

	// ErrInvalidIdentifier matches every *InvalidIdentifierError
	ErrInvalidIdentifier = errors.New("uuidv7: invalid identifier")

	// ErrClockRegression matches every *ClockRegressionError
	ErrClockRegression = errors.New("uuidv7: clock moved backwards")

	// ErrTimestampOutOfRange indicates a timestamp that does not fit the 48-bit field
	ErrTimestampOutOfRange = errors.New("uuidv7: timestamp outside 48-bit millisecond range")
)

// InvalidIdentifierError is returned by operations that require a well-formed
// UUIDv7. Err is one of ErrNilUUID, ErrInvalidVersion or ErrInvalidVariant.
type InvalidIdentifierError struct {
	ID  UUID
	Err error
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.ID)
}

// Unwrap exposes both ErrInvalidIdentifier and the specific reason to errors.Is.
func (e *InvalidIdentifierError) Unwrap() []error {
	return []error{ErrInvalidIdentifier, e.Err}
}

// ClockRegressionError reports a generation request whose timestamp is older
// than the last one recorded by the Generator.
type ClockRegressionError struct {
	Last     int64 // last timestamp used by the generator, in ms
	Observed int64 // requested timestamp, in ms
}

func (e *ClockRegressionError) Error() string {
	return fmt.Sprintf("uuidv7: clock moved backwards by %d ms (last %d, observed %d)",
		e.Last-e.Observed, e.Last, e.Observed)
}

func (e *ClockRegressionError) Unwrap() error {
	return ErrClockRegression
}
