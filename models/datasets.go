package models

import (
	"sort"
	"strconv"
	"strings"

	"genobrowse/api/models/constants"
	columnKind "genobrowse/api/models/constants/column-kind"
)

// Row is a single record keyed by column name. Cells hold the raw CSV text;
// typed access goes through the helpers below.
type Row map[string]string

// missing numeric cells surface as "NaN" once a column has been parsed as
// floating point; treat them the same as blanks
func isMissing(raw string) bool {
	return raw == "" || raw == "NaN" || raw == "NA" || raw == constants.NoValuePlaceholder
}

func (r Row) Int(column string) (int, bool) {
	raw := strings.TrimSpace(r[column])
	if isMissing(raw) {
		return 0, false
	}
	// positions occasionally arrive with thousands separators
	value, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return 0, false
	}
	return value, true
}

func (r Row) Float(column string) (float64, bool) {
	raw := strings.TrimSpace(r[column])
	if isMissing(raw) {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Schema maps each column name to its kind. It is the capability check
// consulted before constructing any column-dependent filter or statistic:
// a spec whose column is missing here is silently skipped rather than failed.
type Schema map[string]constants.ColumnKind

func (s Schema) HasColumn(column string) bool {
	_, ok := s[column]
	return ok
}

func (s Schema) KindOf(column string) constants.ColumnKind {
	return s[column]
}

func (s Schema) HasNumericColumn(column string) bool {
	return columnKind.IsNumeric(s[column])
}

// Dataset is a named table loaded once at startup and immutable afterwards;
// it is shared read-only across concurrent requests.
type Dataset struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"` // source column order, preserved for display and export
	Schema  Schema   `json:"schema"`
	Rows    []Row    `json:"-"`
}

func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

func (d *Dataset) HasColumn(column string) bool {
	return d.Schema.HasColumn(column)
}

// DistinctValues returns the sorted distinct non-empty values of a column,
// skipping the no-value placeholder.
func (d *Dataset) DistinctValues(column string) []string {
	if !d.HasColumn(column) {
		return nil
	}

	seen := map[string]bool{}
	var values []string
	for _, row := range d.Rows {
		value := strings.TrimSpace(row[column])
		if value == "" || value == constants.NoValuePlaceholder || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	sort.Strings(values)
	return values
}
