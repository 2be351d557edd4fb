package hours

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeToMinutes converts a 12-hour time string like "5 PM" or
// "8:30 AM" to minutes since midnight. The AM/PM modifier is optional
// and case-insensitive; without it the literal hour value is used as-is.
// Malformed numeric parts degrade to 0 rather than failing; callers
// needing strict input validate before reaching this layer.
func ParseTimeToMinutes(timeStr string) int {
	timePart, modifier, _ := strings.Cut(timeStr, " ")
	hoursStr, minutesStr, hasMinutes := strings.Cut(timePart, ":")

	h, _ := strconv.Atoi(hoursStr)
	m := 0
	if hasMinutes {
		m, _ = strconv.Atoi(minutesStr)
	}

	switch strings.ToUpper(strings.TrimSpace(modifier)) {
	case "PM":
		if h < 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	}

	return h*60 + m
}

// FormatTo24Hour converts a 12-hour time string ("5 PM", "8:30 am") to
// zero-padded 24-hour "HH:MM" form. An empty input yields an empty string.
func FormatTo24Hour(timeStr string) string {
	if timeStr == "" {
		return ""
	}

	lower := strings.ToLower(timeStr)
	isPM := strings.Contains(lower, "pm")

	timePart := strings.ReplaceAll(lower, "am", "")
	timePart = strings.ReplaceAll(timePart, "pm", "")
	timePart = strings.TrimSpace(timePart)

	h, m := 0, 0
	if hoursStr, minutesStr, ok := strings.Cut(timePart, ":"); ok {
		h, _ = strconv.Atoi(hoursStr)
		m, _ = strconv.Atoi(minutesStr)
	} else {
		h, _ = strconv.Atoi(timePart)
	}

	if isPM && h < 12 {
		h += 12
	} else if !isPM && h == 12 {
		// 12 AM is midnight
		h = 0
	}

	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatTo12Hour converts a 24-hour "HH:MM" string to 12-hour form,
// dropping the minutes entirely when they are zero ("17:00" -> "5 PM").
func FormatTo12Hour(timeStr string) string {
	if timeStr == "" {
		return ""
	}

	hoursStr, minutesStr, _ := strings.Cut(timeStr, ":")
	h24, _ := strconv.Atoi(hoursStr)
	m, _ := strconv.Atoi(minutesStr)

	modifier := "AM"
	if h24 >= 12 {
		modifier = "PM"
	}
	h12 := h24 % 12
	if h12 == 0 {
		// midnight (00:xx) and noon (12:xx)
		h12 = 12
	}

	if m == 0 {
		return fmt.Sprintf("%d %s", h12, modifier)
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, modifier)
}

// FormatHours renders a day's opening window for display. A nil span is
// "Closed"; otherwise both sides have any ":00" minute suffix stripped,
// e.g. "8:00 AM" – "5:30 PM" becomes "8 AM – 5:30 PM".
func FormatHours(span *Span) string {
	if span == nil {
		return "Closed"
	}
	simplify := func(t string) string {
		return strings.Replace(t, ":00", "", 1)
	}
	return fmt.Sprintf("%s – %s", simplify(span.Open), simplify(span.Close))
}
