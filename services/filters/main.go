package filtersService

import (
	"strings"

	"genobrowse/api/models"
	"genobrowse/api/models/constants"
	filterKind "genobrowse/api/models/constants/filter-kind"

	linq "github.com/ahmetb/go-linq"
)

// FilterSpec is a named predicate over one column. Specs are created fresh
// from request parameters on every interaction and combined with AND
// semantics by Apply.
type FilterSpec struct {
	Kind      constants.FilterKind `json:"kind"`
	Column    string               `json:"column"`
	EndColumn string               `json:"endColumn,omitempty"` // range-containment only
	Value     string               `json:"value,omitempty"`     // equality value / substring needle
	Min       float64              `json:"min,omitempty"`
	Max       float64              `json:"max,omitempty"`
}

func NewEqualityFilter(column string, value string) FilterSpec {
	return FilterSpec{Kind: filterKind.Equality, Column: column, Value: value}
}

func NewRangeContainmentFilter(startColumn string, endColumn string, lowerBound float64, upperBound float64) FilterSpec {
	return FilterSpec{Kind: filterKind.RangeContainment, Column: startColumn, EndColumn: endColumn, Min: lowerBound, Max: upperBound}
}

func NewNumericRangeFilter(column string, min float64, max float64) FilterSpec {
	return FilterSpec{Kind: filterKind.NumericRange, Column: column, Min: min, Max: max}
}

func NewSubstringFilter(column string, needle string) FilterSpec {
	return FilterSpec{Kind: filterKind.Substring, Column: column, Value: needle}
}

func NewPresenceFilter(column string) FilterSpec {
	return FilterSpec{Kind: filterKind.Presence, Column: column}
}

// FilterResult is the row subset of a dataset satisfying a conjunction of
// specs. It references, never copies or mutates, the source rows.
type FilterResult struct {
	Dataset *models.Dataset
	Rows    []models.Row
}

// IsDisabled reports whether the spec is a no-op by construction: an "All"
// dropdown selection or an empty search string.
func (s FilterSpec) IsDisabled() bool {
	switch s.Kind {
	case filterKind.Equality:
		value := strings.TrimSpace(s.Value)
		return value == "" ||
			value == constants.SentinelAll ||
			strings.HasPrefix(value, constants.SentinelAll+" ")
	case filterKind.Substring:
		return strings.TrimSpace(s.Value) == ""
	}
	return false
}

// AppliesTo is the capability check: a spec whose column (or end column) is
// absent from the dataset's schema deactivates silently.
func (s FilterSpec) AppliesTo(schema models.Schema) bool {
	if !schema.HasColumn(s.Column) {
		return false
	}
	if s.Kind == filterKind.RangeContainment && !schema.HasColumn(s.EndColumn) {
		return false
	}
	return true
}

func (s FilterSpec) predicate() func(models.Row) bool {
	switch s.Kind {
	case filterKind.Equality:
		// case-sensitive exact match for categorical columns
		return func(row models.Row) bool {
			return row[s.Column] == s.Value
		}

	case filterKind.RangeContainment:
		return func(row models.Row) bool {
			start, startOk := row.Float(s.Column)
			end, endOk := row.Float(s.EndColumn)
			if !startOk || !endOk {
				return false
			}
			// Containment, not overlap: the row's [start, end] interval must
			// lie entirely inside the queried bounds. A row merely crossing
			// a bound is excluded. This matches the browser's historical
			// behavior and is intentional, even though overlap queries are
			// the genomics norm.
			return s.Min <= start && end <= s.Max
		}

	case filterKind.NumericRange:
		// inclusive on both ends
		return func(row models.Row) bool {
			value, ok := row.Float(s.Column)
			return ok && s.Min <= value && value <= s.Max
		}

	case filterKind.Substring:
		needle := strings.ToLower(strings.TrimSpace(s.Value))
		return func(row models.Row) bool {
			return strings.Contains(strings.ToLower(row[s.Column]), needle)
		}

	case filterKind.Presence:
		return func(row models.Row) bool {
			value := strings.TrimSpace(row[s.Column])
			return value != "" && value != constants.NoValuePlaceholder
		}
	}

	return func(models.Row) bool {
		return true
	}
}

// Apply evaluates the conjunction of the given specs over the dataset's rows.
// Pure function of (dataset, specs): the dataset is never mutated and the
// result preserves the source row order. Specs are commutative; evaluation
// stops early once the running subset is empty.
func Apply(dataset *models.Dataset, specs []FilterSpec) FilterResult {
	rows := dataset.Rows

	for _, spec := range specs {
		if len(rows) == 0 {
			break
		}
		if spec.IsDisabled() || !spec.AppliesTo(dataset.Schema) {
			continue
		}

		pred := spec.predicate()
		filtered := make([]models.Row, 0, len(rows))
		linq.From(rows).
			WhereT(func(row models.Row) bool {
				return pred(row)
			}).
			ToSlice(&filtered)
		rows = filtered
	}

	return FilterResult{Dataset: dataset, Rows: rows}
}
