package summariesService

import (
	"fmt"
	"sort"
	"strings"

	"genobrowse/api/models"
	"genobrowse/api/models/constants"
	s "genobrowse/api/models/constants/sort"
	datasetsRepo "genobrowse/api/repositories/datasets"

	linq "github.com/ahmetb/go-linq"
)

const DefaultHistogramBins = 20

// placeholder for statistics whose backing column a dataset lacks
const NotApplicable = "N/A"

// CategoryCounts groups a dataset's rows by a categorical column and counts
// each group. Order is caller-specified: alphabetical for chart axes,
// count-descending (with topN) for ranked lists. Returns nil when the column
// is absent from the schema.
func CategoryCounts(dataset *models.Dataset, column string, order constants.SortOrder, topN int) []models.CategoryCount {
	if !dataset.HasColumn(column) {
		return nil
	}

	countsByKey := map[string]int{}
	for _, row := range dataset.Rows {
		value := strings.TrimSpace(row[column])
		if value == "" || value == constants.NoValuePlaceholder {
			continue
		}
		countsByKey[value]++
	}

	counts := make([]models.CategoryCount, 0, len(countsByKey))
	for key, count := range countsByKey {
		counts = append(counts, models.CategoryCount{Key: key, Count: count})
	}

	switch order {
	case s.CountDescending:
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].Count != counts[j].Count {
				return counts[i].Count > counts[j].Count
			}
			return counts[i].Key < counts[j].Key
		})
	default:
		sort.Slice(counts, func(i, j int) bool {
			return counts[i].Key < counts[j].Key
		})
	}

	if topN > 0 && len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}

// NumericSummary computes mean/min/max over a numeric column, ignoring rows
// without a parseable value. Zero qualifying rows yield Applicable=false
// rather than a NaN or a division by zero.
func NumericSummary(dataset *models.Dataset, column string) models.NumericSummary {
	if !dataset.Schema.HasNumericColumn(column) {
		return models.NumericSummary{}
	}

	var (
		count    int
		sum      float64
		min, max float64
	)
	for _, row := range dataset.Rows {
		value, ok := row.Float(column)
		if !ok {
			continue
		}
		if count == 0 || value < min {
			min = value
		}
		if count == 0 || value > max {
			max = value
		}
		sum += value
		count++
	}

	if count == 0 {
		return models.NumericSummary{}
	}

	return models.NumericSummary{
		Applicable: true,
		Count:      count,
		Mean:       sum / float64(count),
		Min:        min,
		Max:        max,
	}
}

// Histogram bins a numeric column into the given number of equal-width bins
// over its observed min-max range. Display only; nothing is persisted.
func Histogram(dataset *models.Dataset, column string, bins int) []models.HistogramBin {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	if !dataset.Schema.HasNumericColumn(column) {
		return nil
	}

	var values []float64
	for _, row := range dataset.Rows {
		if value, ok := row.Float(column); ok {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, value := range values {
		if value < min {
			min = value
		}
		if value > max {
			max = value
		}
	}

	if min == max {
		return []models.HistogramBin{{Lo: min, Hi: max, Count: len(values)}}
	}

	width := (max - min) / float64(bins)
	histogram := make([]models.HistogramBin, bins)
	for i := range histogram {
		histogram[i].Lo = min + float64(i)*width
		histogram[i].Hi = min + float64(i+1)*width
	}
	for _, value := range values {
		index := int((value - min) / width)
		if index >= bins {
			// the max value lands in the last bin
			index = bins - 1
		}
		histogram[index].Count++
	}

	return histogram
}

// FunctionalDirection buckets rows by the sign of a score column: positive
// reads as gain-of-function, negative as loss-of-function.
func FunctionalDirection(dataset *models.Dataset, column string) models.DirectionSplit {
	if !dataset.Schema.HasNumericColumn(column) {
		return models.DirectionSplit{}
	}

	split := models.DirectionSplit{}
	for _, row := range dataset.Rows {
		value, ok := row.Float(column)
		if !ok {
			continue
		}
		split.Applicable = true
		switch {
		case value > 0:
			split.GainOfFunction++
		case value < 0:
			split.LossOfFunction++
		default:
			split.Neutral++
		}
	}
	return split
}

// Summarize computes the per-dataset aggregate used by the single-dataset
// summary view. Every statistic is schema-conditional.
func Summarize(dataset *models.Dataset) models.SummaryRow {
	summary := models.SummaryRow{
		Dataset:   dataset.Name,
		Title:     dataset.Title,
		TotalRows: dataset.RowCount(),
	}

	if dataset.HasColumn(constants.ColumnChromosome) {
		summary.DistinctChromosomes = linq.From(dataset.Rows).
			SelectT(func(row models.Row) string {
				return row[constants.ColumnChromosome]
			}).
			WhereT(func(value string) bool {
				return value != ""
			}).
			Distinct().
			Count()
	}

	summary.VariantTypeCounts = CategoryCounts(dataset, constants.ColumnVariantType, s.Alphabetical, 0)
	summary.ClinicalSigCounts = CategoryCounts(dataset, constants.ColumnClinicalSignificance, s.Alphabetical, 0)
	summary.QualityScore = NumericSummary(dataset, constants.ColumnQualityScore)
	summary.EnhancerLength = NumericSummary(dataset, constants.ColumnEnhancerLength)
	summary.FunctionalDirection = FunctionalDirection(dataset, constants.ColumnFunctionalScore)

	return summary
}

// Compare builds one comparison row per dataset, ordered by dataset name.
// Datasets with heterogeneous schemas compare cleanly: any statistic whose
// column a dataset lacks carries the "N/A" placeholder.
func Compare(store *datasetsRepo.Store) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0, len(store.Names()))
	for _, name := range store.Names() {
		dataset, ok := store.Dataset(name)
		if !ok {
			continue
		}
		rows = append(rows, CompareOne(dataset))
	}
	return rows
}

func CompareOne(dataset *models.Dataset) models.ComparisonRow {
	row := models.ComparisonRow{
		Dataset:           dataset.Name,
		Title:             dataset.Title,
		Rows:              dataset.RowCount(),
		Chromosomes:       NotApplicable,
		MeanQualityScore:  NotApplicable,
		QualityScoreRange: NotApplicable,
		TopVariantType:    NotApplicable,
		DbSnpCoverage:     NotApplicable,
	}

	if dataset.HasColumn(constants.ColumnChromosome) {
		row.Chromosomes = fmt.Sprintf("%d", len(dataset.DistinctValues(constants.ColumnChromosome)))
	}

	if quality := NumericSummary(dataset, constants.ColumnQualityScore); quality.Applicable {
		row.MeanQualityScore = fmt.Sprintf("%.2f", quality.Mean)
		row.QualityScoreRange = fmt.Sprintf("%.2f to %.2f", quality.Min, quality.Max)
	}

	if top := CategoryCounts(dataset, constants.ColumnVariantType, s.CountDescending, 1); len(top) > 0 {
		row.TopVariantType = fmt.Sprintf("%s (%d)", top[0].Key, top[0].Count)
	}

	if dataset.HasColumn(constants.ColumnDbSnpId) && dataset.RowCount() > 0 {
		present := 0
		for _, r := range dataset.Rows {
			value := strings.TrimSpace(r[constants.ColumnDbSnpId])
			if value != "" && value != constants.NoValuePlaceholder {
				present++
			}
		}
		row.DbSnpCoverage = fmt.Sprintf("%.1f%%", 100*float64(present)/float64(dataset.RowCount()))
	}

	return row
}
