package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Clock time regex: "HH:MM", optionally followed by a whitespace-separated
// suffix such as a timezone label ("09:00 JST").
var clockTimeRegex = regexp.MustCompile(`^\d{1,2}:\d{2}(\s+\S+)*$`)

// IsValidClockTime reports whether s looks like an "HH:MM" time-of-day,
// with or without a trailing suffix.
func IsValidClockTime(s string) bool {
	return clockTimeRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth reports whether month is a calendar month number.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsValidYear bounds year to the range the upstream HR system accepts.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= 2100
}

// IsValidAllocation reports whether f is a workload fraction in [0, 1].
func IsValidAllocation(f float64) bool {
	return f >= 0 && f <= 1
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
