package calendar

import "time"

// MonthIndex flattens a date to year*12 + zero-based month for simple
// integer comparison across year boundaries.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// Navigator enforces the sliding 3-month window: only the month before,
// the month of, and the month after a fixed today anchor are reachable.
// The anchor is captured once at construction and never re-read, so the
// window cannot shift mid-session across a midnight boundary.
type Navigator struct {
	today    time.Time
	current  time.Time // first of the visible month, at noon
	selected time.Time
}

// NewNavigator creates a navigator anchored at today, viewing today's month
// with today selected.
func NewNavigator(today time.Time) *Navigator {
	anchor := Noon(today)
	return &Navigator{
		today:    anchor,
		current:  atNoon(anchor.Year(), anchor.Month(), 1),
		selected: anchor,
	}
}

func (n *Navigator) Today() time.Time    { return n.today }
func (n *Navigator) Current() time.Time  { return n.current }
func (n *Navigator) Selected() time.Time { return n.selected }

func (n *Navigator) minIndex() int { return MonthIndex(n.today) - 1 }
func (n *Navigator) maxIndex() int { return MonthIndex(n.today) + 1 }

// CanShift reports whether moving the visible month by increment stays
// inside the allowed window.
func (n *Navigator) CanShift(increment int) bool {
	target := MonthIndex(n.current) + increment
	return target >= n.minIndex() && target <= n.maxIndex()
}

// Shift moves the visible month by increment. Moves outside the window are
// silently ignored; there is no error and no wraparound. Returns whether the
// visible month changed.
func (n *Navigator) Shift(increment int) bool {
	if !n.CanShift(increment) {
		return false
	}
	n.current = atNoon(n.current.Year(), n.current.Month()+time.Month(increment), 1)
	return true
}

// Select picks a concrete date. Dates in out-of-window months (including
// padding cells of the visible grid) are silently ignored. Selecting a valid
// padding day of an adjacent in-window month both selects it and switches
// the visible month to contain it. Returns whether the selection changed.
func (n *Navigator) Select(date time.Time) bool {
	d := Noon(date)
	idx := MonthIndex(d)
	if idx < n.minIndex() || idx > n.maxIndex() {
		return false
	}

	n.selected = d
	if idx != MonthIndex(n.current) {
		n.current = atNoon(d.Year(), d.Month(), 1)
	}
	return true
}

// SelectToday jumps back to the anchor. Always succeeds: the anchor is
// inside the window by construction.
func (n *Navigator) SelectToday() {
	n.selected = n.today
	n.current = atNoon(n.today.Year(), n.today.Month(), 1)
}
