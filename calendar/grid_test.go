package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridShape(t *testing.T) {
	tests := []struct {
		name           string
		reference      time.Time
		leadingPadding int
		monthDays      int
	}{
		{
			// 2025-07-01 is a Tuesday: two padding cells before it.
			name:           "july 2025 starts on tuesday",
			reference:      time.Date(2025, time.July, 10, 0, 0, 0, 0, time.Local),
			leadingPadding: 2,
			monthDays:      31,
		},
		{
			// 2025-06-01 is a Sunday: no leading padding at all.
			name:           "june 2025 starts on sunday",
			reference:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local),
			leadingPadding: 0,
			monthDays:      30,
		},
		{
			// 2024-02-01 is a Thursday; leap February has 29 days.
			name:           "leap february 2024",
			reference:      time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local),
			leadingPadding: 4,
			monthDays:      29,
		},
		{
			// 2025-02-01 is a Saturday.
			name:           "common february 2025",
			reference:      time.Date(2025, time.February, 14, 0, 0, 0, 0, time.Local),
			leadingPadding: 6,
			monthDays:      28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)
			grid := BuildMonthGrid(tt.reference, today, nil)

			require.Len(t, grid, GridCells)

			for i := 0; i < tt.leadingPadding; i++ {
				assert.False(t, grid[i].IsCurrentMonth, "cell %d should be padding", i)
			}
			for i := tt.leadingPadding; i < tt.leadingPadding+tt.monthDays; i++ {
				assert.True(t, grid[i].IsCurrentMonth, "cell %d should be in-month", i)
			}
			for i := tt.leadingPadding + tt.monthDays; i < GridCells; i++ {
				assert.False(t, grid[i].IsCurrentMonth, "cell %d should be trailing padding", i)
			}

			// The first in-month cell is day 1 in its weekday column.
			first := grid[tt.leadingPadding]
			assert.Equal(t, 1, first.Date.Day())
			assert.Equal(t, tt.leadingPadding, int(first.Date.Weekday()))

			// Dates are consecutive across the whole grid, padding included.
			for i := 1; i < GridCells; i++ {
				assert.Equal(t, grid[i-1].Date.AddDate(0, 0, 1).Day(), grid[i].Date.Day(),
					"cell %d should follow cell %d by one day", i, i-1)
			}
		})
	}
}

func TestBuildMonthGridToday(t *testing.T) {
	reference := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)

	t.Run("today inside the month is flagged once", func(t *testing.T) {
		today := time.Date(2025, time.July, 15, 18, 45, 0, 0, time.Local)
		grid := BuildMonthGrid(reference, today, nil)

		count := 0
		for _, cell := range grid {
			if cell.IsToday {
				count++
				assert.Equal(t, 15, cell.Date.Day())
				assert.True(t, cell.IsCurrentMonth)
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("today outside the month flags nothing", func(t *testing.T) {
		today := time.Date(2025, time.September, 3, 0, 0, 0, 0, time.Local)
		grid := BuildMonthGrid(reference, today, nil)

		for _, cell := range grid {
			assert.False(t, cell.IsToday)
		}
	})

	t.Run("today on a padding day is not flagged", func(t *testing.T) {
		// June 30 appears as a leading padding cell of the July grid.
		today := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.Local)
		grid := BuildMonthGrid(reference, today, nil)

		for _, cell := range grid {
			assert.False(t, cell.IsToday)
		}
	})
}

func TestBuildMonthGridHasEvents(t *testing.T) {
	reference := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)
	today := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)

	events := []DateRange{
		{Start: "2025-07-10", End: "2025-07-12"},
		{Start: "2025-07-20", End: "2025-07-20"},
		// Spills over from June into the first July days.
		{Start: "2025-06-28", End: "2025-07-02"},
	}

	grid := BuildMonthGrid(reference, today, events)

	marked := map[int]bool{}
	for _, cell := range grid {
		if cell.HasEvents {
			assert.True(t, cell.IsCurrentMonth, "padding cells never carry event flags")
			marked[cell.Date.Day()] = true
		}
	}

	assert.Equal(t, map[int]bool{
		1: true, 2: true,
		10: true, 11: true, 12: true,
		20: true,
	}, marked)
}

func TestDateRangeCovers(t *testing.T) {
	r := DateRange{Start: "2025-07-10", End: "2025-07-12"}

	assert.True(t, r.Covers("2025-07-10"))
	assert.True(t, r.Covers("2025-07-11"))
	assert.True(t, r.Covers("2025-07-12"))
	assert.False(t, r.Covers("2025-07-09"))
	assert.False(t, r.Covers("2025-07-13"))
}
