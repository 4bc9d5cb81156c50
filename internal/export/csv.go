package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mhennig/kalender/internal/domain"
)

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the calendar as semicolon-separated values with a
// UTF-8 byte-order marker. Column order matches the spreadsheet export;
// there is no index column.
func WriteCSV(w io.Writer, rows []domain.Row) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
