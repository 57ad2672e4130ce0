package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// StripSuffix returns the first whitespace-separated token of s. Upstream
// clock values may carry a timezone label ("09:00 JST"); only the clock part
// is meaningful here.
func StripSuffix(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// MinutesOfDay converts an "HH:MM" string (optionally suffixed, e.g.
// "09:00 JST") to minutes since midnight. Empty or malformed input yields 0
// rather than an error; callers that need to distinguish "midnight" from
// "not clocked" must check for the empty string before calling.
func MinutesOfDay(s string) int {
	clock := StripSuffix(s)
	if clock == "" {
		return 0
	}

	hh, mm, _ := strings.Cut(clock, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	return hours*60 + minutes
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
