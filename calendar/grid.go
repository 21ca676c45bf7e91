package calendar

import "time"

// GridCells is the fixed grid size: 6 rows of 7 weekday columns.
const GridCells = 42

// Weekdays are the column headers, Sunday first.
var Weekdays = []string{"일", "월", "화", "수", "목", "금", "토"}

// DayInfo is one calendar grid cell. It is derived on every render and has
// no independent lifecycle.
type DayInfo struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	HasEvents      bool
}

// DateRange is the inclusive [start, end] span of one event, in canonical
// date strings.
type DateRange struct {
	Start string
	End   string
}

// Covers reports whether the range includes the canonical date.
func (r DateRange) Covers(date string) bool {
	return date >= r.Start && date <= r.End
}

// atNoon pins a date to 12:00 local so day arithmetic cannot slip across a
// midnight or DST boundary.
func atNoon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// Noon normalizes an arbitrary time to 12:00 on the same calendar day.
func Noon(t time.Time) time.Time {
	return atNoon(t.Year(), t.Month(), t.Day())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// BuildMonthGrid builds exactly 42 cells for the month containing reference:
// leading padding days aligning the 1st to its weekday column (Sunday =
// column 0), the month's days, and trailing padding to fill six rows.
// Padding cells never carry event or today flags. The today anchor is passed
// in, never read from the clock.
func BuildMonthGrid(reference, today time.Time, events []DateRange) []DayInfo {
	year, month := reference.Year(), reference.Month()

	first := atNoon(year, month, 1)
	last := atNoon(year, month+1, 0)
	todayNoon := Noon(today)

	days := make([]DayInfo, 0, GridCells)

	for i := int(first.Weekday()); i > 0; i-- {
		days = append(days, DayInfo{Date: atNoon(year, month, 1-i)})
	}

	for d := 1; d <= last.Day(); d++ {
		date := atNoon(year, month, d)
		dateStr := date.Format(DateLayout)

		hasEvents := false
		for _, ev := range events {
			if ev.Covers(dateStr) {
				hasEvents = true
				break
			}
		}

		days = append(days, DayInfo{
			Date:           date,
			IsCurrentMonth: true,
			IsToday:        sameDay(date, todayNoon),
			HasEvents:      hasEvents,
		})
	}

	for d := 1; len(days) < GridCells; d++ {
		days = append(days, DayInfo{Date: atNoon(year, month+1, d)})
	}

	return days
}
