package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTheme_TrimmedExamples(t *testing.T) {
	theme := &Theme{
		Name:     "Volkach",
		Prompt:   "p",
		Examples: []string{" Führung Volkach ", "", "  ", "Wanderroute Prichsenstadt"},
	}
	assert.Equal(t, []string{"Führung Volkach", "Wanderroute Prichsenstadt"}, theme.TrimmedExamples())
}

func TestTheme_Validate(t *testing.T) {
	assert.Error(t, (&Theme{Prompt: "p"}).Validate())
	assert.Error(t, (&Theme{Name: "n"}).Validate())
	assert.NoError(t, (&Theme{Name: "n", Prompt: "p"}).Validate())
}

func TestSettings_Validate_ReportsAllMissingLists(t *testing.T) {
	s := &Settings{Platforms: []string{"Instagram"}}
	err := s.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "themes")
	assert.Contains(t, err.Error(), "content formats")
	assert.Contains(t, err.Error(), "statuses")
	assert.Contains(t, err.Error(), "topics")
	assert.NotContains(t, err.Error(), "platforms")
}

func TestSettings_DefaultStatus(t *testing.T) {
	s := &Settings{Statuses: []string{"in Planung", "freigegeben"}}
	assert.Equal(t, "in Planung", s.DefaultStatus())
	assert.Equal(t, "", (&Settings{}).DefaultStatus())
}

func TestWeekdayName_German(t *testing.T) {
	// 2024-01-01 is a Monday.
	assert.Equal(t, "Montag", WeekdayName(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Sonntag", WeekdayName(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)))
}

func TestIsBusinessDay(t *testing.T) {
	mon := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		assert.True(t, IsBusinessDay(mon.AddDate(0, 0, i)), "weekday %d", i)
	}
	assert.False(t, IsBusinessDay(mon.AddDate(0, 0, 5))) // Saturday
	assert.False(t, IsBusinessDay(mon.AddDate(0, 0, 6))) // Sunday
}

func TestRow_FormattedDate(t *testing.T) {
	r := &Row{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "05.03.2024", r.FormattedDate())
}
