// Package timehm provides arithmetic over 24-hour "HH:MM" time-of-day
// strings. All values are anchored to a fixed reference date so that two
// times on the same calendar day can be subtracted directly.
package timehm

import (
	"fmt"
	"time"
)

// Layout is the accepted wire format for time-of-day values.
const Layout = "15:04"

// Times are anchored here before subtraction. The date itself is arbitrary,
// it only has to be shared by both operands.
var anchor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Parse parses s as a 24-hour "HH:MM" clock time anchored on the reference
// date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return anchor.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// Duration returns end minus start in fractional hours. Both arguments must
// be "HH:MM" strings; a malformed argument yields an error and callers
// summing hours treat it as zero. An end earlier than start produces a
// negative result, which entry creation rejects for regular shifts.
func Duration(start, end string) (float64, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := Parse(end)
	if err != nil {
		return 0, err
	}
	return e.Sub(s).Hours(), nil
}
