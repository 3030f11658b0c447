// Package biztime centralizes time handling. Everything runs in UTC;
// transport timestamps are serialized as RFC3339 strings.
package biztime

import (
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTimestamp formats a UTC time for transport using RFC3339 format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
