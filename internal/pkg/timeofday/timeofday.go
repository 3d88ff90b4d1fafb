package timeofday

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// Parse converts a strict "HH:MM" string (hour 0-23, minute 0-59) into
// minutes of day. Any other input reports ok=false instead of an error so
// corrupt historical records never block processing.
func Parse(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, false
	}
	// Atoi alone would admit signed components like "+1".
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsValid reports whether s is a well-formed "HH:MM" time of day.
func IsValid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Duration returns the minutes between two "HH:MM" times. If the end falls
// before the start the interval is assumed to wrap past midnight. Empty or
// malformed input degrades to 0.
func Duration(start, end string) int {
	s, ok := Parse(start)
	if !ok {
		return 0
	}
	e, ok := Parse(end)
	if !ok {
		return 0
	}
	if e < s {
		e += MinutesPerDay
	}
	return e - s
}

// FormatDuration renders minutes as "Xh Ym", omitting the zero component.
// Zero total renders as "0m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
