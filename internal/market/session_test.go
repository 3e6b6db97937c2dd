package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-01-05 is a Monday, 2026-01-03 a Saturday.
func localTime(t *testing.T, day, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, time.January, day, hour, min, 0, 0, exchangeTZ)
}

func TestDayFraction(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{name: "pre-open", now: localTime(t, 5, 8, 0), want: 1.0},
		{name: "at the open clamps to floor", now: localTime(t, 5, 9, 30), want: 0.05},
		{name: "just after the open clamps", now: localTime(t, 5, 9, 35), want: 0.05},
		{name: "midday is half the session", now: localTime(t, 5, 12, 45), want: 0.5},
		{name: "at the close", now: localTime(t, 5, 16, 0), want: 1.0},
		{name: "evening", now: localTime(t, 5, 20, 0), want: 1.0},
		{name: "saturday noon", now: localTime(t, 3, 12, 0), want: 1.0},
		{name: "sunday noon", now: localTime(t, 4, 12, 0), want: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DayFraction(tt.now), 1e-12)
		})
	}
}

func TestDayFraction_Monotone(t *testing.T) {
	prev := 0.0
	for min := 0; min < 390; min += 30 {
		now := localTime(t, 5, 9, 30).Add(time.Duration(min) * time.Minute)
		f := DayFraction(now)
		assert.GreaterOrEqual(t, f, prev, "fraction must not shrink during the session")
		assert.LessOrEqual(t, f, 1.0)
		prev = f
	}
}
