package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestAllocate_Invariants_RandomizedWindows property-tests the allocator
// invariants over random windows, start dates and frequency maps.
func TestAllocate_Invariants_RandomizedWindows(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	platforms := []string{"Instagram", "Facebook", "TikTok", "LinkedIn", "YouTube"}

	for trial := 0; trial < 200; trial++ {
		numDays := rng.Intn(336) + 30 // 30–365
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(365))

		freqs := make(map[string]int)
		for _, p := range platforms[:rng.Intn(len(platforms))+1] {
			freqs[p] = rng.Intn(8) // 0–7
		}

		slots := Allocate(start, numDays, freqs)
		businessDayCount := len(BusinessDays(start, numDays))

		perPlatform := make(map[string]int)
		for i, s := range slots {
			// Invariant 1: never a weekend date.
			assert.NotEqual(t, time.Saturday, s.Date.Weekday(),
				"trial %d: slot %d on Saturday", trial, i)
			assert.NotEqual(t, time.Sunday, s.Date.Weekday(),
				"trial %d: slot %d on Sunday", trial, i)

			// Invariant 2: every date inside the window.
			assert.False(t, s.Date.Before(start), "trial %d: slot before window", trial)
			assert.True(t, s.Date.Before(start.AddDate(0, 0, numDays)),
				"trial %d: slot past window end", trial)

			perPlatform[s.Platform]++
		}

		// Invariant 3: per-platform count equals min(targetCount, businessDays),
		// and zero-frequency platforms contribute nothing.
		for p, f := range freqs {
			want := f * (numDays / 7)
			if want > businessDayCount {
				want = businessDayCount
			}
			assert.Equal(t, want, perPlatform[p],
				"trial %d: platform %s freq %d over %d days", trial, p, f, numDays)
		}

		// Invariant 4: global (date, platform) ordering.
		for i := 1; i < len(slots); i++ {
			prev, cur := slots[i-1], slots[i]
			if prev.Date.Equal(cur.Date) {
				assert.LessOrEqual(t, prev.Platform, cur.Platform, "trial %d", trial)
			} else {
				assert.True(t, prev.Date.Before(cur.Date), "trial %d", trial)
			}
		}
	}
}

// TestAllocate_Deterministic verifies that equal inputs produce equal output.
func TestAllocate_Deterministic(t *testing.T) {
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	freqs := map[string]int{"Instagram": 3, "Facebook": 2, "TikTok": 1}

	a := Allocate(start, 120, freqs)
	b := Allocate(start, 120, freqs)
	assert.Equal(t, a, b)
}
