package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mhennig/kalender/internal/domain"
)

func previewRows() []domain.Row {
	return []domain.Row{
		{
			Date:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ISOWeek:       1,
			WeekdayName:   "Montag",
			Platform:      "Instagram",
			Topic:         "Regionales",
			ContentFormat: "Story",
			Content:       "Führung Volkach",
			Status:        "in Planung",
		},
		{
			Date:          time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			ISOWeek:       1,
			WeekdayName:   "Mittwoch",
			Platform:      "TikTok",
			Topic:         "Finanzwissen",
			ContentFormat: "Reel",
			Content:       "Spartipps für den Jahresstart",
			Status:        "freigegeben",
		},
	}
}

func TestFormatOptionList(t *testing.T) {
	out := FormatOptionList("Plattformen", []string{"Instagram", "TikTok"})
	assert.Contains(t, out, "PLATTFORMEN")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Instagram")
	assert.Contains(t, out, "2.")
	assert.Contains(t, out, "TikTok")
}

func TestFormatOptionList_Empty(t *testing.T) {
	out := FormatOptionList("Themen", nil)
	assert.Contains(t, out, "(empty)")
}

func TestFormatThemeList(t *testing.T) {
	themes := []*domain.Theme{
		{Name: "Volkach", Prompt: "Erstelle eine Idee zu {theme}.", Examples: []string{"A", "B", " "}},
	}
	out := FormatThemeList(themes)
	assert.Contains(t, out, "Volkach")
	assert.Contains(t, out, "2", "blank examples must not count")
}

func TestFormatThemeDetail(t *testing.T) {
	out := FormatThemeDetail(&domain.Theme{Name: "Volkach", Prompt: "P", Examples: []string{"Idee"}})
	assert.Contains(t, out, "VOLKACH")
	assert.Contains(t, out, "Idee")

	empty := FormatThemeDetail(&domain.Theme{Name: "Leer", Prompt: "P"})
	assert.Contains(t, empty, "(keine)")
}

func TestFormatCalendarPreview(t *testing.T) {
	out := FormatCalendarPreview(previewRows(), 0)
	assert.Contains(t, out, "01.01.2024")
	assert.Contains(t, out, "Mittwoch")
	assert.Contains(t, out, "Führung Volkach")
	assert.NotContains(t, out, "weitere Zeilen")
}

func TestFormatCalendarPreview_Limit(t *testing.T) {
	out := FormatCalendarPreview(previewRows(), 1)
	assert.Contains(t, out, "01.01.2024")
	assert.NotContains(t, out, "03.01.2024")
	assert.Contains(t, out, "und 1 weitere Zeilen")
}

func TestFormatGenerateSummary(t *testing.T) {
	out := FormatGenerateSummary(12, []string{"Content_Kalender_Test.xlsx"}, []string{"Hinweis"})
	assert.Contains(t, out, "12 Beiträge geplant")
	assert.Contains(t, out, "Content_Kalender_Test.xlsx")
	assert.Contains(t, out, "WARNUNG: Hinweis")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "kurz", truncate("kurz", 10))
	assert.Equal(t, "Übermäß…", truncate("Übermäßig lang", 8))
}
