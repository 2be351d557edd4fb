package hours

import "time"

// Status is the live open state of a branch.
type Status string

const (
	StatusOpen        Status = "open"
	StatusClosingSoon Status = "closingSoon"
	StatusClosed      Status = "closed"
)

// ClosingSoonWindow is how many minutes before closing a branch is
// reported as closingSoon.
const ClosingSoonWindow = 60

// StatusAt derives the open state of a schedule at the given moment.
// It is pure: the caller owns the clock and re-invokes it for live
// updates.
//
// Yesterday's hours are checked first. If yesterday ran an overnight
// span (close earlier than open, e.g. 10 PM – 2 AM) and the current
// time is still before that close, the branch is serving yesterday's
// tail and today's schedule is not consulted at all. An overnight span
// that started today reports open with no closingSoon window; its
// window is only evaluated tomorrow, from the yesterday branch.
func StatusAt(schedule Schedule, now time.Time) Status {
	today := DayFromTime(now)
	yesterday := today.Prev()
	nowMinutes := now.Hour()*60 + now.Minute()

	if span := schedule[yesterday]; span != nil {
		openYesterday := ParseTimeToMinutes(span.Open)
		closeYesterday := ParseTimeToMinutes(span.Close)
		if openYesterday > closeYesterday && nowMinutes < closeYesterday {
			if closeYesterday-nowMinutes <= ClosingSoonWindow {
				return StatusClosingSoon
			}
			return StatusOpen
		}
	}

	if span := schedule[today]; span != nil {
		openToday := ParseTimeToMinutes(span.Open)
		closeToday := ParseTimeToMinutes(span.Close)
		if nowMinutes >= openToday {
			if openToday < closeToday && nowMinutes < closeToday {
				if nowMinutes >= closeToday-ClosingSoonWindow {
					return StatusClosingSoon
				}
				return StatusOpen
			} else if openToday > closeToday {
				return StatusOpen
			}
		}
	}

	return StatusClosed
}
