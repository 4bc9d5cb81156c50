// Package export serializes a generated content calendar to spreadsheet
// and delimited-text formats.
package export

import (
	"fmt"
	"strconv"

	"github.com/mhennig/kalender/internal/domain"
)

// Columns is the fixed export column order shared by all formats.
var Columns = []string{"Datum", "KW", "Tag", "Plattform", "Thema", "Content-Format", "Inhalt", "Status"}

// Filename builds the download name for a calendar file. The customer
// name is embedded verbatim.
func Filename(customer, ext string) string {
	return fmt.Sprintf("Content_Kalender_%s.%s", customer, ext)
}

func record(r domain.Row) []string {
	return []string{
		r.FormattedDate(),
		strconv.Itoa(r.ISOWeek),
		r.WeekdayName,
		r.Platform,
		r.Topic,
		r.ContentFormat,
		r.Content,
		r.Status,
	}
}
