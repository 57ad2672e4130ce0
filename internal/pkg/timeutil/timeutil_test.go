package timeutil

import (
	"testing"
)

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"09:00", 540},
		{"09:00 JST", 540},
		{"10:15 JST", 615},
		{"00:00", 0},
		{"23:59", 1439},
		{"", 0},
		{"   ", 0},
		{"9:05", 545},
	}
	for _, c := range cases {
		got := MinutesOfDay(c.input)
		if got != c.want {
			t.Errorf("MinutesOfDay(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestMinutesOfDay_Malformed(t *testing.T) {
	// Malformed fragments must still produce a deterministic integer.
	cases := []struct {
		input string
		want  int
	}{
		{"abc", 0},
		{"ab:cd", 0},
		{"09:xx", 540},
		{"xx:30", 30},
		{"09", 540},
	}
	for _, c := range cases {
		got := MinutesOfDay(c.input)
		if got != c.want {
			t.Errorf("MinutesOfDay(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestStripSuffix(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"09:00 JST", "09:00"},
		{"09:00", "09:00"},
		{"09:00 JST extra", "09:00"},
		{"  09:00  ", "09:00"},
		{"", ""},
	}
	for _, c := range cases {
		got := StripSuffix(c.input)
		if got != c.want {
			t.Errorf("StripSuffix(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{540, "09:00"},
		{615, "10:15"},
		{0, "00:00"},
		{-5, "00:00"},
		{1439, "23:59"},
	}
	for _, c := range cases {
		got := FormatMinutes(c.input)
		if got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}
