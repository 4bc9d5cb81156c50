package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays_ExcludesWeekends(t *testing.T) {
	// 2024-01-01 is a Monday; a full week has 5 business days.
	days := BusinessDays(date(2024, 1, 1), 7)
	require.Len(t, days, 5)
	for _, d := range days {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
}

func TestBusinessDays_StartingOnWeekend(t *testing.T) {
	// 2024-01-06 is a Saturday; the first eligible day is Monday the 8th.
	days := BusinessDays(date(2024, 1, 6), 7)
	require.NotEmpty(t, days)
	assert.Equal(t, date(2024, 1, 8), days[0])
	assert.Len(t, days, 5)
}

func TestAllocate_TargetCountPerPlatform(t *testing.T) {
	// 90 days at frequency 3: targetCount = 3 * 12 = 36.
	slots := Allocate(date(2024, 1, 1), 90, map[string]int{"Instagram": 3})
	assert.Len(t, slots, 36)
}

func TestAllocate_ZeroFrequencyExcluded(t *testing.T) {
	slots := Allocate(date(2024, 1, 1), 90, map[string]int{
		"Instagram": 2,
		"Facebook":  0,
	})
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.Equal(t, "Instagram", s.Platform)
	}
}

func TestAllocate_ShortWindowProducesNothing(t *testing.T) {
	// numDays < 7 means numDays/7 == 0, so every targetCount is zero.
	slots := Allocate(date(2024, 1, 1), 6, map[string]int{"Instagram": 7})
	assert.Empty(t, slots)
}

func TestAllocate_EmptyFrequencies(t *testing.T) {
	assert.Empty(t, Allocate(date(2024, 1, 1), 90, nil))
	assert.Empty(t, Allocate(date(2024, 1, 1), 90, map[string]int{}))
}

func TestAllocate_SortedByDateThenPlatform(t *testing.T) {
	slots := Allocate(date(2024, 1, 1), 90, map[string]int{
		"Instagram": 3,
		"Facebook":  3,
		"TikTok":    2,
	})
	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		assert.False(t, cur.Date.Before(prev.Date), "slot %d out of date order", i)
		if cur.Date.Equal(prev.Date) {
			assert.LessOrEqual(t, prev.Platform, cur.Platform, "slot %d out of platform order", i)
		}
	}
}

func TestAllocate_TargetExceedsBusinessDays_CappedAtAvailable(t *testing.T) {
	// 35 days at frequency 7: targetCount = 7 * 5 = 35, but only 25
	// business days exist. The platform gets each business day once.
	slots := Allocate(date(2024, 1, 1), 35, map[string]int{"Instagram": 7})
	businessDays := BusinessDays(date(2024, 1, 1), 35)
	assert.Len(t, slots, len(businessDays))

	seen := make(map[time.Time]bool)
	for _, s := range slots {
		assert.False(t, seen[s.Date], "date %s allocated twice", s.Date)
		seen[s.Date] = true
	}
}

func TestAllocate_FirstBusinessDayAlwaysSelected(t *testing.T) {
	slots := Allocate(date(2024, 1, 1), 90, map[string]int{"Instagram": 1})
	require.NotEmpty(t, slots)
	assert.Equal(t, date(2024, 1, 1), slots[0].Date)
}

func TestAllocate_SpreadsAcrossWindow(t *testing.T) {
	// With an even spread the last selected slot should land well past
	// the midpoint of the window rather than front-loading.
	slots := Allocate(date(2024, 1, 1), 90, map[string]int{"Instagram": 2})
	require.Len(t, slots, 24)
	last := slots[len(slots)-1].Date
	mid := date(2024, 1, 1).AddDate(0, 0, 45)
	assert.True(t, last.After(mid), "last slot %s should be after window midpoint", last)
}
