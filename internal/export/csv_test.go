package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhennig/kalender/internal/domain"
)

func sampleRows() []domain.Row {
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
			Topic:         "Veranstaltungen",
			ContentFormat: "Reel",
			Content:       "Idee mit; Semikolon",
			Status:        "in Planung",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")

	r := csv.NewReader(bytes.NewReader(raw[3:]))
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Columns, records[0])
	assert.Equal(t, []string{
		"01.01.2024", "1", "Montag", "Instagram", "Regionales", "Story", "Führung Volkach", "in Planung",
	}, records[1])
	assert.Equal(t, "Idee mit; Semikolon", records[2][6], "semicolons must survive quoting")
}

func TestWriteCSV_EmptyRowsStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	r := csv.NewReader(bytes.NewReader(buf.Bytes()[3:]))
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Columns, records[0])
}

func TestFilename_EmbedsCustomerVerbatim(t *testing.T) {
	assert.Equal(t,
		"Content_Kalender_Raiffeisenbank Mainschleife-Steigerwald eG.xlsx",
		Filename("Raiffeisenbank Mainschleife-Steigerwald eG", "xlsx"))
}
