package datemath

import "time"

// ISOLayout is the wire format of a civil date.
const ISOLayout = "2006-01-02"

// Clock returns the current instant. Injected so callers can pin "today" in tests.
type Clock func() time.Time

// Date builds a civil date. Civil dates are carried as time.Time at 00:00 UTC
// so that equality and ordering do not depend on any zone.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Format renders a civil date as YYYY-MM-DD.
func Format(d time.Time) string {
	return d.UTC().Format(ISOLayout)
}

// ParseISO parses a YYYY-MM-DD civil date.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOLayout, s)
}
