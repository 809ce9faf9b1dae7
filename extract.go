package uuidv7

import (
	"cmp"
	"time"
)

// Validate reports whether u is a well-formed UUIDv7. The error is an
// *InvalidIdentifierError wrapping ErrNilUUID, ErrInvalidVersion or ErrInvalidVariant.
func (u UUID) Validate() error {
	switch {
	case u.IsNil():
		return &InvalidIdentifierError{ID: u, Err: ErrNilUUID}
	case u.Version() != VersionTimeSorted:
		return &InvalidIdentifierError{ID: u, Err: ErrInvalidVersion}
	case u.Variant() != VariantRFC4122:
		return &InvalidIdentifierError{ID: u, Err: ErrInvalidVariant}
	}
	return nil
}

// IsValid reports whether u is a UUIDv7 with the RFC 4122 variant.
func IsValid(u UUID) bool {
	return u.Validate() == nil
}

// IsValidString reports whether s parses as a valid UUIDv7. Empty or
// malformed input yields false.
func IsValidString(s string) bool {
	u, err := Parse(s)
	return err == nil && IsValid(u)
}

// ExtractTimestamp returns the Unix time in milliseconds embedded in u.
func ExtractTimestamp(u UUID) (int64, error) {
	if err := u.Validate(); err != nil {
		return 0, err
	}
	return rawTimestamp(u), nil
}

// ExtractTime returns the timestamp embedded in u as a UTC time.
func ExtractTime(u UUID) (time.Time, error) {
	ms, err := ExtractTimestamp(u)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// ExtractTimeIn returns the timestamp embedded in u in the given location.
// A nil loc means UTC.
func ExtractTimeIn(u UUID, loc *time.Location) (time.Time, error) {
	t, err := ExtractTime(u)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		return t, nil
	}
	return t.In(loc), nil
}

// CompareByTimestamp compares the embedded timestamps of a and b only,
// ignoring sequence and random bits. It returns -1, 0 or +1.
func CompareByTimestamp(a, b UUID) (int, error) {
	ta, err := ExtractTimestamp(a)
	if err != nil {
		return 0, err
	}
	tb, err := ExtractTimestamp(b)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(ta, tb), nil
}

// AgeMillis returns how many milliseconds ago u was generated. The result is
// negative for identifiers stamped in the future.
func AgeMillis(u UUID) (int64, error) {
	return ageMillis(u, time.Now())
}

// IsOlderThan reports whether u is more than maxAgeMillis old.
func IsOlderThan(u UUID, maxAgeMillis int64) (bool, error) {
	age, err := AgeMillis(u)
	if err != nil {
		return false, err
	}
	return age > maxAgeMillis, nil
}

func ageMillis(u UUID, now time.Time) (int64, error) {
	ms, err := ExtractTimestamp(u)
	if err != nil {
		return 0, err
	}
	return now.UnixMilli() - ms, nil
}
