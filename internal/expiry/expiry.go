// Package expiry turns a validated expiration month/year pair into a
// concrete instant and display form. A card expires at the last
// instant of its expiration month.
package expiry

import (
	"fmt"
	"strconv"
	"time"
)

var defaultLoc = time.UTC

// SetDefaultLocation sets the time location used when callers pass a
// nil location (fallback UTC).
func SetDefaultLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc = loc
	}
}

// ResolveYear expands a 2-digit year token against the century of at;
// 4-digit tokens pass through unchanged.
func ResolveYear(token string, at time.Time) (int, error) {
	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("year token must be digits: %w", err)
	}
	switch len(token) {
	case 2:
		century := at.Year() - at.Year()%100
		return century + year, nil
	case 4:
		return year, nil
	default:
		return 0, fmt.Errorf("year token must be 2 or 4 digits, got %q", token)
	}
}

// EndOfMonth returns the last instant of the given month in loc
// (nil loc selects the package default).
func EndOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	if loc == nil {
		loc = defaultLoc
	}
	firstNext := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond)
}

// IsExpired reports whether 'at' is strictly after the last instant of
// the expiration month. The end instant itself is still usable.
func IsExpired(year int, month time.Month, at time.Time, loc *time.Location) bool {
	end := EndOfMonth(year, month, loc)
	return at.In(end.Location()).After(end)
}

// CardFace returns the canonical MM/YY display form of an expiration
// month and year.
func CardFace(month time.Month, year int) string {
	return fmt.Sprintf("%02d/%02d", int(month), year%100)
}
