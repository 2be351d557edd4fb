package hours

import "time"

// Day is a weekday with the week starting on Monday.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayNames is the canonical Monday-first ordering of short day names.
var DayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return "???"
	}
	return DayNames[d]
}

// DayFromTime maps the host clock's Sunday-first weekday onto a
// Monday-first Day.
func DayFromTime(t time.Time) Day {
	return Day((int(t.Weekday()) + 6) % 7)
}

// Prev returns the day before d, wrapping Monday back to Sunday.
func (d Day) Prev() Day {
	return (d + 6) % 7
}

// Span is one day's opening window as 12-hour clock strings,
// e.g. {"8 AM", "5:30 PM"}. A close time earlier than the open time
// means the span runs overnight into the next day.
type Span struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Schedule holds one optional Span per weekday, Monday first. A nil
// entry means closed all day. The fixed-size array keeps the mapping
// total: all seven days are always present.
type Schedule [7]*Span
