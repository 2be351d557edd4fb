package holidays

import (
	"fmt"
	"time"
)

// Holiday is a single public holiday. Date uses YYYY-MM-DD so lookups
// are plain string comparisons.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// GetZimbabweHolidays returns the Zimbabwean public holidays for a year.
// It is a pure function of the year and is recomputed on every call.
// Good Friday and Easter Monday are not computed.
func GetZimbabweHolidays(year int) []Holiday {
	holidays := []Holiday{
		{Date: fmt.Sprintf("%d-01-01", year), Name: "New Year's Day"},
		{Date: fmt.Sprintf("%d-02-21", year), Name: "Robert Gabriel Mugabe National Youth Day"},
		{Date: fmt.Sprintf("%d-04-18", year), Name: "Independence Day"},
		{Date: fmt.Sprintf("%d-05-01", year), Name: "Workers' Day"},
		{Date: fmt.Sprintf("%d-05-25", year), Name: "Africa Day"},
		{Date: fmt.Sprintf("%d-12-22", year), Name: "Unity Day"},
		{Date: fmt.Sprintf("%d-12-25", year), Name: "Christmas Day"},
		{Date: fmt.Sprintf("%d-12-26", year), Name: "Boxing Day"},
	}

	// Heroes' Day: the Monday of the week after the first Monday on or
	// after Aug 1. When Aug 1 is itself a Monday the count skips ahead
	// to the following Monday first.
	augustFirst := time.Date(year, time.August, 1, 0, 0, 0, 0, time.Local)
	daysUntilFirstMonday := (8 - int(augustFirst.Weekday())) % 7
	if daysUntilFirstMonday == 0 {
		daysUntilFirstMonday = 7
	}
	heroesDay := time.Date(year, time.August, 1+daysUntilFirstMonday+7, 0, 0, 0, 0, time.Local)
	holidays = append(holidays, Holiday{Date: heroesDay.Format("2006-01-02"), Name: "Heroes' Day"})

	// Defence Forces Day is the day after Heroes' Day.
	defenceForcesDay := heroesDay.AddDate(0, 0, 1)
	holidays = append(holidays, Holiday{Date: defenceForcesDay.Format("2006-01-02"), Name: "Defence Forces Day"})

	return holidays
}

// GetHolidayForDate returns the holiday falling on the given local
// calendar date, or nil when the date is not a public holiday.
func GetHolidayForDate(date time.Time) *Holiday {
	dateString := date.Format("2006-01-02")
	for _, h := range GetZimbabweHolidays(date.Year()) {
		if h.Date == dateString {
			return &h
		}
	}
	return nil
}
