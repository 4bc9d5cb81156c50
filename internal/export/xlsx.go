package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mhennig/kalender/internal/domain"
)

const (
	// SheetCalendar is the primary worksheet holding the row table.
	SheetCalendar = "Content Kalender"

	// sheetDropdowns is a hidden worksheet holding the allowed values
	// referenced by the data validations on the primary sheet.
	sheetDropdowns = "Dropdowns"
)

// WriteXLSX writes the calendar workbook. The primary sheet carries the
// row table; a hidden Dropdowns sheet carries the topic, content-format
// and status lists, and the Thema, Content-Format and Status columns get
// list validations (blanks allowed) referencing those ranges.
func WriteXLSX(w io.Writer, rows []domain.Row, settings *domain.Settings) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCalendar); err != nil {
		return fmt.Errorf("naming calendar sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetCalendar, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		values := []interface{}{
			r.FormattedDate(),
			r.ISOWeek,
			r.WeekdayName,
			r.Platform,
			r.Topic,
			r.ContentFormat,
			r.Content,
			r.Status,
		}
		if err := f.SetSheetRow(SheetCalendar, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := writeDropdownSheet(f, settings); err != nil {
		return err
	}
	if err := addValidations(f, len(rows), settings); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// writeDropdownSheet fills the hidden sheet: topics in column A, content
// formats in column B, statuses in column C, starting at row 1.
func writeDropdownSheet(f *excelize.File, settings *domain.Settings) error {
	if _, err := f.NewSheet(sheetDropdowns); err != nil {
		return fmt.Errorf("creating dropdown sheet: %w", err)
	}

	lists := [][]string{settings.Topics, settings.Formats, settings.Statuses}
	for col, values := range lists {
		for row, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return fmt.Errorf("dropdown cell: %w", err)
			}
			if err := f.SetCellValue(sheetDropdowns, cell, v); err != nil {
				return fmt.Errorf("writing dropdown value: %w", err)
			}
		}
	}

	if err := f.SetSheetVisible(sheetDropdowns, false); err != nil {
		return fmt.Errorf("hiding dropdown sheet: %w", err)
	}
	return nil
}

// addValidations attaches one list validation per dropdown column,
// covering data rows 2..rowCount+1.
func addValidations(f *excelize.File, rowCount int, settings *domain.Settings) error {
	if rowCount == 0 {
		return nil
	}

	validations := []struct {
		column      string
		dropdownCol string
		count       int
	}{
		{"E", "A", len(settings.Topics)},   // Thema
		{"F", "B", len(settings.Formats)},  // Content-Format
		{"H", "C", len(settings.Statuses)}, // Status
	}

	for _, v := range validations {
		if v.count == 0 {
			continue
		}
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", v.column, v.column, rowCount+1)
		dv.SetSqrefDropList(fmt.Sprintf("%s!$%s$1:$%s$%d",
			sheetDropdowns, v.dropdownCol, v.dropdownCol, v.count))
		if err := f.AddDataValidation(SheetCalendar, dv); err != nil {
			return fmt.Errorf("adding %s validation: %w", v.column, err)
		}
	}
	return nil
}
