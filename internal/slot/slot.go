package slot

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a slot date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// IsValidTime accepts any non-empty time window label ("10:00 AM - 12:00 PM",
// "morning", ...). The window is an opaque label to the backend; only the
// date is interpreted.
func IsValidTime(s string) bool {
	return strings.TrimSpace(s) != ""
}
