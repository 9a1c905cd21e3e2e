package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 25.0, ConversionRate(1, 4))
}

func TestChange(t *testing.T) {
	tests := []struct {
		current, previous int
		want              float64
	}{
		{10, 5, 100},
		{5, 10, -50},
		{3, 0, 100},
		{0, 0, 0},
		{4, 3, 33.3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Change(tt.current, tt.previous))
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", RelativeTime(now.Add(-30*time.Second), now))
	assert.Equal(t, "3 days ago", RelativeTime(now.Add(-72*time.Hour), now))
	assert.Equal(t, "2 hours ago", RelativeTime(now.Add(-2*time.Hour), now))
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)
	cur, prev := MonthWindow(now)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), cur)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), prev)
	assert.True(t, InMonth(now, cur))
	assert.False(t, InMonth(now, prev))
	assert.True(t, InMonth(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC), prev))
}
