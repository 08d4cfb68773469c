package sim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakewell/cashrake/sim"
)

func TestMonthStarts_AnchorsAtFirstOfMonth(t *testing.T) {
	// A mid-month start date still anchors the window at day 1.
	starts := sim.MonthStarts(time.Date(2025, time.November, 23, 0, 0, 0, 0, time.UTC), 3)
	require.Len(t, starts, 3)

	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), starts[0])
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), starts[1])
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), starts[2])
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2100, time.February, 1, 0, 0, 0, 0, time.UTC), 28}, // century, not leap
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sim.DaysInMonth(c.date), c.date.Format("2006-01"))
	}
}

func TestWeekStart_MondayConvention(t *testing.T) {
	monday := time.Date(2025, time.October, 27, 0, 0, 0, 0, time.UTC)

	// Monday maps to itself; every later weekday maps back to it.
	for offset := 0; offset < 7; offset++ {
		d := monday.AddDate(0, 0, offset)
		assert.Equal(t, monday, sim.WeekStart(d), d.Format("2006-01-02 Mon"))
	}

	// Sunday belongs to the week that started six days earlier.
	sunday := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, sim.WeekStart(sunday))
}
