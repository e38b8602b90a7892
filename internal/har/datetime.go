package har

import (
	"time"
)

// Supported time formats for HAR datetime parsing, in order of preference
var supportedTimeFormats = []string{
	"2006-01-02T15:04:05.000Z",      // HAR standard format with milliseconds
	time.RFC3339Nano,                // RFC3339 with nanoseconds
	"2006-01-02T15:04:05.000-07:00", // HAR with timezone offset
}

// ParseStarted parses an entry's startedDateTime. The zero time and false are
// returned for empty or unrecognised values; a bad timestamp never fails a load.
func ParseStarted(dateTime string) (time.Time, bool) {
	if dateTime == "" {
		return time.Time{}, false
	}
	for _, format := range supportedTimeFormats {
		if t, err := time.Parse(format, dateTime); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
