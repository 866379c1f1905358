package timeparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"auction-market/internal/auctionerrors"
)

// Canonical is the storage layout for auction start/end values.
const Canonical = "2006-01-02T15:04"

const (
	layoutNoZone     = "2006-01-02T15:04:05"
	layoutNoSeconds  = "2006-01-02T15:04"
	layoutNumericOff = "2006-01-02T15:04:05-0700"
)

// zoneSuffix matches a trailing "Z" or a ±hh:mm / ±hhmm offset.
var zoneSuffix = regexp.MustCompile(`(Z|[+-]\d{2}:?\d{2})$`)

// ParseInstant resolves one of the accepted timestamp forms to an absolute
// instant. Values carrying an explicit offset or zone marker are taken as
// given; values without zone information are read as UTC wall-clock time,
// with ":00" seconds assumed when seconds are omitted. Anything else fails
// with ErrMalformedTimestamp; callers must not guess further.
func ParseInstant(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse instant: empty value: %w", auctionerrors.ErrMalformedTimestamp)
	}
	// The legacy storage format used a space separator in places.
	s = strings.Replace(s, " ", "T", 1)

	if zoneSuffix.MatchString(s) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		if t, err := time.Parse(layoutNumericOff, s); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("parse instant %q: %w", value, auctionerrors.ErrMalformedTimestamp)
	}

	if t, err := time.ParseInLocation(layoutNoZone, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutNoSeconds, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("parse instant %q: %w", value, auctionerrors.ErrMalformedTimestamp)
}

// ParseCreationTime parses the strict ISO calendar date-time accepted on
// auction creation (seconds optional, no zone marker) and returns both the
// canonical "yyyy-MM-ddTHH:mm" storage string and the resolved instant.
// Whether the instant is acceptable relative to "now" is the caller's call.
func ParseCreationTime(value string) (string, time.Time, error) {
	s := strings.TrimSpace(value)
	if t, err := time.ParseInLocation(layoutNoZone, s, time.UTC); err == nil {
		return t.Format(Canonical), t.Truncate(time.Minute), nil
	}
	if t, err := time.ParseInLocation(layoutNoSeconds, s, time.UTC); err == nil {
		return t.Format(Canonical), t, nil
	}
	return "", time.Time{}, fmt.Errorf("parse creation time %q: %w", value, auctionerrors.ErrMalformedTimestamp)
}
