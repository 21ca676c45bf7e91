package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDateString(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "canonical date passes through",
			raw:      "2025-07-15",
			expected: "2025-07-15",
		},
		{
			name:     "RFC3339 timestamp truncates to date",
			raw:      "2025-07-15T09:30:00Z",
			expected: "2025-07-15",
		},
		{
			name:     "RFC3339 with offset truncates to date",
			raw:      "2025-07-15T23:59:59+09:00",
			expected: "2025-07-15",
		},
		{
			name:     "space-separated date-time",
			raw:      "2025-07-15 14:00:00",
			expected: "2025-07-15",
		},
		{
			name:     "T-separated date-time without zone",
			raw:      "2025-07-15T14:00:00",
			expected: "2025-07-15",
		},
		{
			name:     "empty input yields empty",
			raw:      "",
			expected: "",
		},
		{
			name:     "garbage yields empty",
			raw:      "not-a-date",
			expected: "",
		},
		{
			name:     "slash format is not accepted",
			raw:      "2025/07/15",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToDateString(tt.raw))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		start string
		end   string
	}{
		{
			name:  "31-day month",
			year:  2025,
			month: 7,
			start: "2025-07-01",
			end:   "2025-07-31",
		},
		{
			name:  "30-day month",
			year:  2025,
			month: 4,
			start: "2025-04-01",
			end:   "2025-04-30",
		},
		{
			name:  "february in a common year",
			year:  2025,
			month: 2,
			start: "2025-02-01",
			end:   "2025-02-28",
		},
		{
			name:  "february in a leap year",
			year:  2024,
			month: 2,
			start: "2024-02-01",
			end:   "2024-02-29",
		},
		{
			name:  "december stays inside its year",
			year:  2025,
			month: 12,
			start: "2025-12-01",
			end:   "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := MonthBounds(tt.year, tt.month)
			assert.Equal(t, tt.start, w.Start)
			assert.Equal(t, tt.end, w.End)
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := MonthBounds(2025, 7)

	assert.True(t, w.Contains("2025-07-01"))
	assert.True(t, w.Contains("2025-07-31"))
	assert.True(t, w.Contains("2025-07-15"))
	assert.False(t, w.Contains("2025-06-30"))
	assert.False(t, w.Contains("2025-08-01"))
}
