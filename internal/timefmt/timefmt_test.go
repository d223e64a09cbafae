package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2025, time.January, 15, hour, 0, 0, 0, time.UTC)
}

func TestHourLabelBoundaries(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12am"},
		{1, "1am"},
		{11, "11am"},
		{12, "12pm"},
		{13, "1pm"},
		{23, "11pm"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HourLabel(at(tt.hour)), "hour %d", tt.hour)
	}
}

func TestHourLabelTotal(t *testing.T) {
	// Every hour of the day produces a non-empty label with an am/pm suffix.
	for h := 0; h < 24; h++ {
		label := HourLabel(at(h))
		assert.Regexp(t, `^(1[0-2]|[1-9])(am|pm)$`, label, "hour %d", h)
	}
}

func TestWeekday(t *testing.T) {
	// 2025-01-15 is a Wednesday.
	assert.Equal(t, "Wed", Weekday(at(9)))
}

func TestParseLocal(t *testing.T) {
	ts, err := ParseLocal("2025-01-15T19:00")
	require.NoError(t, err)
	assert.Equal(t, 19, ts.Hour())
	assert.Equal(t, 15, ts.Day())

	day, err := ParseLocal("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, day.Weekday())

	_, err = ParseLocal("not-a-time")
	assert.Error(t, err)
}
