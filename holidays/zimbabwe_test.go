package holidays

import (
	"testing"
	"time"
)

func holidayByName(year int, name string) *Holiday {
	for _, h := range GetZimbabweHolidays(year) {
		if h.Name == name {
			return &h
		}
	}
	return nil
}

func TestFixedDateHolidays(t *testing.T) {
	list := GetZimbabweHolidays(2024)
	if len(list) != 10 {
		t.Fatalf("expected 10 holidays, got %d", len(list))
	}

	want := map[string]string{
		"2024-01-01": "New Year's Day",
		"2024-04-18": "Independence Day",
		"2024-05-01": "Workers' Day",
		"2024-12-25": "Christmas Day",
		"2024-12-26": "Boxing Day",
	}
	byDate := map[string]string{}
	for _, h := range list {
		byDate[h.Date] = h.Name
	}
	for date, name := range want {
		if byDate[date] != name {
			t.Errorf("expected %s on %s, got %q", name, date, byDate[date])
		}
	}
}

func TestHeroesDayRegularYear(t *testing.T) {
	// Aug 1 2024 was a Thursday; the second Monday falls on Aug 12.
	h := holidayByName(2024, "Heroes' Day")
	if h == nil {
		t.Fatal("Heroes' Day missing")
	}
	if h.Date != "2024-08-12" {
		t.Errorf("expected 2024-08-12, got %s", h.Date)
	}

	d := holidayByName(2024, "Defence Forces Day")
	if d == nil || d.Date != "2024-08-13" {
		t.Errorf("expected Defence Forces Day on 2024-08-13, got %+v", d)
	}
}

func TestHeroesDayWhenAugustStartsOnMonday(t *testing.T) {
	// Aug 1 2022 was a Monday. The calculation skips straight to the
	// next Monday before adding a week, landing on the third Monday.
	h := holidayByName(2022, "Heroes' Day")
	if h == nil {
		t.Fatal("Heroes' Day missing")
	}
	if h.Date != "2022-08-15" {
		t.Errorf("expected 2022-08-15, got %s", h.Date)
	}
	if wd := mustParse(t, h.Date).Weekday(); wd != time.Monday {
		t.Errorf("Heroes' Day should be a Monday, got %s", wd)
	}
}

func TestHeroesDayAlwaysMonday(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		h := holidayByName(year, "Heroes' Day")
		if h == nil {
			t.Fatalf("Heroes' Day missing for %d", year)
		}
		if wd := mustParse(t, h.Date).Weekday(); wd != time.Monday {
			t.Errorf("%d: Heroes' Day on a %s (%s)", year, wd, h.Date)
		}
	}
}

func TestGetHolidayForDate(t *testing.T) {
	newYear := time.Date(2025, 1, 1, 15, 30, 0, 0, time.Local)
	h := GetHolidayForDate(newYear)
	if h == nil || h.Name != "New Year's Day" {
		t.Fatalf("expected New Year's Day, got %+v", h)
	}

	if h := GetHolidayForDate(time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)); h != nil {
		t.Errorf("Jan 2 is not a holiday, got %+v", h)
	}
}

func mustParse(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	return parsed
}
