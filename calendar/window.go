// Package calendar provides the pure date logic behind the promotion
// calendar: canonical date strings, month windows, the 42-cell month grid,
// and the 3-month navigation policy. Nothing here touches a clock; "today"
// is always an explicit argument so callers can pin one anchor per session.
package calendar

import "time"

// DateLayout is the canonical YYYY-MM-DD calendar-date representation used
// for all storage and comparison. It is lexicographically date-ordered, so
// range checks are plain string comparisons.
const DateLayout = "2006-01-02"

// ToDateString coerces raw date input (a canonical date, an RFC3339
// timestamp, or a date-time) to the canonical form. Unparseable input yields
// an empty string; callers substitute a window bound as appropriate.
func ToDateString(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout)
		}
	}
	return ""
}

// Window is the inclusive date range covering a full calendar month.
type Window struct {
	Start string
	End   string
}

// MonthBounds computes the first and last calendar dates of the given month
// (1-indexed). Day zero of the following month resolves to the correct last
// day, leap-year February included.
func MonthBounds(year, month int) Window {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start.Format(DateLayout),
		End:   end.Format(DateLayout),
	}
}

// Contains reports whether the canonical date falls inside the window.
func (w Window) Contains(date string) bool {
	return date >= w.Start && date <= w.End
}
