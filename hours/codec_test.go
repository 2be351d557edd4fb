package hours

import (
	"fmt"
	"testing"
)

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12 AM", 0},
		{"12 PM", 720},
		{"5 PM", 17 * 60},
		{"5:30 PM", 17*60 + 30},
		{"8 AM", 8 * 60},
		{"8:30 am", 8*60 + 30},
		{"08:30 AM", 8*60 + 30},
		{"11:59 PM", 23*60 + 59},
	}
	for _, c := range cases {
		if got := ParseTimeToMinutes(c.in); got != c.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseTimeToMinutesLowercaseModifier(t *testing.T) {
	// The modifier comparison is case-insensitive.
	if got := ParseTimeToMinutes("5 pm"); got != 17*60 {
		t.Errorf("expected 1020, got %d", got)
	}
	if got := ParseTimeToMinutes("12 am"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestParseTimeToMinutesNoModifier(t *testing.T) {
	// Without AM/PM the literal hour is used unmodified.
	if got := ParseTimeToMinutes("17:00"); got != 17*60 {
		t.Errorf("expected 1020, got %d", got)
	}
	if got := ParseTimeToMinutes("8"); got != 8*60 {
		t.Errorf("expected 480, got %d", got)
	}
}

func TestParseTimeToMinutesMalformed(t *testing.T) {
	// Malformed input degrades to zero values instead of failing.
	if got := ParseTimeToMinutes("nonsense"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := ParseTimeToMinutes(""); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestFormatTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5 PM", "17:00"},
		{"5:30 PM", "17:30"},
		{"8 AM", "08:00"},
		{"8:30 AM", "08:30"},
		{"12 AM", "00:00"},
		{"12 PM", "12:00"},
		{"12:15 am", "00:15"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FormatTo24Hour(c.in); got != c.want {
			t.Errorf("FormatTo24Hour(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"17:00", "5 PM"},
		{"17:30", "5:30 PM"},
		{"08:00", "8 AM"},
		{"08:30", "8:30 AM"},
		{"00:00", "12 AM"},
		{"00:15", "12:15 AM"},
		{"12:00", "12 PM"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FormatTo12Hour(c.in); got != c.want {
			t.Errorf("FormatTo12Hour(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoundTrip24Hour(t *testing.T) {
	// 24h -> 12h -> 24h must be lossless for quarter-hour times; the
	// minute-dropping simplification only affects the 12-hour text.
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 15, 30, 45} {
			want := fmt.Sprintf("%02d:%02d", h, m)
			if got := FormatTo24Hour(FormatTo12Hour(want)); got != want {
				t.Errorf("round trip %s -> %q", want, got)
			}
		}
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours(nil); got != "Closed" {
		t.Errorf("expected Closed, got %q", got)
	}
	if got := FormatHours(&Span{Open: "8 AM", Close: "5:30 PM"}); got != "8 AM – 5:30 PM" {
		t.Errorf("unexpected formatting: %q", got)
	}
	// ":00" suffixes are stripped on each side independently.
	if got := FormatHours(&Span{Open: "8:00 AM", Close: "5:00 PM"}); got != "8 AM – 5 PM" {
		t.Errorf("unexpected formatting: %q", got)
	}
}
