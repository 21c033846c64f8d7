package exportService

import (
	"encoding/csv"
	"io"

	"genobrowse/api/models"
	columnKind "genobrowse/api/models/constants/column-kind"
	filtersService "genobrowse/api/services/filters"

	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Variants"

// Columns resolves the export column set: the caller's display subset when
// provided (unknown columns dropped, requested order kept), the full source
// order otherwise.
func Columns(dataset *models.Dataset, display []string) []string {
	if len(display) == 0 {
		return dataset.Columns
	}

	columns := make([]string, 0, len(display))
	for _, column := range display {
		if dataset.HasColumn(column) {
			columns = append(columns, column)
		}
	}
	if len(columns) == 0 {
		return dataset.Columns
	}
	return columns
}

// WriteCsv encodes a filtered subset as delimited text, one row per record.
// The header row is always written, so an empty result produces a valid
// header-only file rather than an error.
func WriteCsv(w io.Writer, result filtersService.FilterResult, columns []string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, row := range result.Rows {
		record := make([]string, len(columns))
		for i, column := range columns {
			record[i] = row[column]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXlsx encodes the same subset as a spreadsheet, writing numeric
// columns as numbers so they sort and chart properly once opened.
func WriteXlsx(w io.Writer, result filtersService.FilterResult, columns []string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return err
	}

	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(xlsxSheetName, cell, column); err != nil {
			return err
		}
	}

	for n, row := range result.Rows {
		for i, column := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, n+2)
			if err != nil {
				return err
			}

			var value interface{} = row[column]
			switch result.Dataset.Schema.KindOf(column) {
			case columnKind.Integer:
				if typed, ok := row.Int(column); ok {
					value = typed
				}
			case columnKind.Float:
				if typed, ok := row.Float(column); ok {
					value = typed
				}
			}

			if err := f.SetCellValue(xlsxSheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
