package scheduler

import (
	"sort"
	"time"

	"github.com/mhennig/kalender/internal/domain"
)

// Allocate computes the posting slots for a calendar window.
//
// The window is [start, start+numDays). Only business days (Mon-Fri) are
// eligible. Each platform with a weekly frequency f > 0 receives
// targetCount = f * (numDays / 7) slots, spread evenly across the
// business days by stepping through them at a fixed stride. When
// targetCount exceeds the number of business days the platform simply
// gets every business day once; it is never scheduled twice on one day.
//
// The combined result is sorted by date, then platform name. The
// function is pure: all randomness (theme, format, content) is deferred
// to the row builder.
func Allocate(start time.Time, numDays int, frequencies map[string]int) []domain.Slot {
	if numDays <= 0 || len(frequencies) == 0 {
		return nil
	}

	businessDays := BusinessDays(start, numDays)
	if len(businessDays) == 0 {
		return nil
	}

	var slots []domain.Slot
	for platform, freq := range frequencies {
		if freq <= 0 {
			continue
		}
		targetCount := freq * (numDays / 7)
		if targetCount == 0 {
			continue
		}
		for _, d := range selectEvenly(businessDays, targetCount) {
			slots = append(slots, domain.Slot{Date: d, Platform: platform})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].Platform < slots[j].Platform
	})

	return slots
}

// BusinessDays returns the business days in [start, start+numDays), in order.
// The time-of-day component of start is preserved on each returned date.
func BusinessDays(start time.Time, numDays int) []time.Time {
	days := make([]time.Time, 0, numDays)
	for i := 0; i < numDays; i++ {
		d := start.AddDate(0, 0, i)
		if domain.IsBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// selectEvenly picks up to targetCount days by striding through the list.
// The stride front-anchors the selection: index 0 is always chosen, and
// the step is floor(len/targetCount) clamped to at least 1.
func selectEvenly(days []time.Time, targetCount int) []time.Time {
	step := len(days) / targetCount
	if step < 1 {
		step = 1
	}

	selected := make([]time.Time, 0, targetCount)
	for i := 0; i < len(days) && len(selected) < targetCount; i += step {
		selected = append(selected, days[i])
	}
	return selected
}
