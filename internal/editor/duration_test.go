package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  string
	}{
		{"no start", nil, date(2024, time.July, 1), ""},
		{"exactly one month boundary", date(2024, time.June, 1), date(2024, time.July, 1), "Less than 1 month"},
		{"year and months", date(2023, time.January, 15), date(2024, time.April, 20), "1 year 3 months"},
		{"single month", date(2024, time.March, 10), date(2024, time.April, 20), "1 month"},
		{"months only", date(2024, time.January, 1), date(2024, time.June, 15), "5 months"},
		{"years plural", date(2020, time.February, 1), date(2024, time.February, 10), "4 years"},
		{"borrow across year", date(2023, time.November, 10), date(2024, time.February, 20), "3 months"},
		{"same day", date(2024, time.June, 1), date(2024, time.June, 1), "Less than 1 month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.start, tt.end))
		})
	}
}

func TestDurationOpenEnded(t *testing.T) {
	restore := now
	defer func() { now = restore }()

	now = func() time.Time { return time.Date(2023, time.January, 20, 12, 0, 0, 0, time.UTC) }
	assert.Equal(t, "Less than 1 month", Duration(date(2023, time.January, 1), nil))

	now = func() time.Time { return time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC) }
	assert.Equal(t, "1 year 3 months", Duration(date(2023, time.January, 15), nil))
}

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "January 2023", MonthYear(date(2023, time.January, 15)))
	assert.Equal(t, "Present", MonthYear(nil))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", Summary(nil, nil))
	assert.Equal(t,
		"January 2023 – April 2024 · 1 year 3 months",
		Summary(date(2023, time.January, 15), date(2024, time.April, 20)))

	restore := now
	defer func() { now = restore }()
	now = func() time.Time { return time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC) }
	assert.Equal(t,
		"January 2023 – Present · 5 months",
		Summary(date(2023, time.January, 15), nil))
}
