package summariesService

import (
	"testing"

	"genobrowse/api/models"
	"genobrowse/api/models/constants"
	columnKind "genobrowse/api/models/constants/column-kind"
	s "genobrowse/api/models/constants/sort"
	datasetsRepo "genobrowse/api/repositories/datasets"

	"github.com/stretchr/testify/assert"
)

func buildEnhancerDataset() *models.Dataset {
	return &models.Dataset{
		Name:  "enhancers",
		Title: "Enhancer Variants",
		Columns: []string{
			constants.ColumnChromosome, constants.ColumnDbSnpId, constants.ColumnVariantType,
			constants.ColumnQualityScore, constants.ColumnFunctionalScore,
		},
		Schema: models.Schema{
			constants.ColumnChromosome:      columnKind.Category,
			constants.ColumnDbSnpId:         columnKind.String,
			constants.ColumnVariantType:     columnKind.Category,
			constants.ColumnQualityScore:    columnKind.Float,
			constants.ColumnFunctionalScore: columnKind.Float,
		},
		Rows: []models.Row{
			{
				constants.ColumnChromosome: "chr1", constants.ColumnDbSnpId: "rs111",
				constants.ColumnVariantType: "SNV", constants.ColumnQualityScore: "80.0", constants.ColumnFunctionalScore: "1.5",
			},
			{
				constants.ColumnChromosome: "chr1", constants.ColumnDbSnpId: "rs222",
				constants.ColumnVariantType: "SNV", constants.ColumnQualityScore: "90.0", constants.ColumnFunctionalScore: "-0.4",
			},
			{
				constants.ColumnChromosome: "chr2", constants.ColumnDbSnpId: constants.NoValuePlaceholder,
				constants.ColumnVariantType: "Deletion", constants.ColumnQualityScore: "60.0", constants.ColumnFunctionalScore: "0",
			},
			{
				constants.ColumnChromosome: "chrX", constants.ColumnDbSnpId: "rs444",
				constants.ColumnVariantType: "Insertion", constants.ColumnQualityScore: "70.0", constants.ColumnFunctionalScore: "2.1",
			},
		},
	}
}

func buildMinimalDataset() *models.Dataset {
	return &models.Dataset{
		Name:    "minimal",
		Title:   "Minimal Variants",
		Columns: []string{constants.ColumnChromosome, constants.ColumnVariantType},
		Schema: models.Schema{
			constants.ColumnChromosome:  columnKind.Category,
			constants.ColumnVariantType: columnKind.Category,
		},
		Rows: []models.Row{
			{constants.ColumnChromosome: "chr3", constants.ColumnVariantType: "SNV"},
			{constants.ColumnChromosome: "chr3", constants.ColumnVariantType: "SNV"},
		},
	}
}

func TestCategoryCounts(t *testing.T) {
	dataset := buildEnhancerDataset()

	t.Run("alphabetical order for chart axes", func(t *testing.T) {
		counts := CategoryCounts(dataset, constants.ColumnVariantType, s.Alphabetical, 0)

		assert.Equal(t, []models.CategoryCount{
			{Key: "Deletion", Count: 1},
			{Key: "Insertion", Count: 1},
			{Key: "SNV", Count: 2},
		}, counts)
	})

	t.Run("count-descending order with topN", func(t *testing.T) {
		counts := CategoryCounts(dataset, constants.ColumnVariantType, s.CountDescending, 2)

		assert.Equal(t, []models.CategoryCount{
			{Key: "SNV", Count: 2},
			{Key: "Deletion", Count: 1},
		}, counts)
	})

	t.Run("placeholder cells are not a category", func(t *testing.T) {
		counts := CategoryCounts(dataset, constants.ColumnDbSnpId, s.Alphabetical, 0)

		for _, count := range counts {
			assert.NotEqual(t, constants.NoValuePlaceholder, count.Key)
		}
		assert.Len(t, counts, 3)
	})

	t.Run("absent column yields nil", func(t *testing.T) {
		assert.Nil(t, CategoryCounts(dataset, constants.ColumnTranscriptionFactor, s.Alphabetical, 0))
	})
}

func TestNumericSummary(t *testing.T) {
	dataset := buildEnhancerDataset()

	t.Run("mean min max over parseable values", func(t *testing.T) {
		summary := NumericSummary(dataset, constants.ColumnQualityScore)

		assert.True(t, summary.Applicable)
		assert.Equal(t, 4, summary.Count)
		assert.InDelta(t, 75.0, summary.Mean, 1e-9)
		assert.Equal(t, 60.0, summary.Min)
		assert.Equal(t, 90.0, summary.Max)
	})

	t.Run("absent column is not applicable", func(t *testing.T) {
		summary := NumericSummary(dataset, constants.ColumnEnhancerLength)

		assert.False(t, summary.Applicable)
		assert.Equal(t, 0, summary.Count)
	})

	t.Run("no parseable values is not applicable", func(t *testing.T) {
		sparse := buildEnhancerDataset()
		for _, row := range sparse.Rows {
			row[constants.ColumnQualityScore] = constants.NoValuePlaceholder
		}

		summary := NumericSummary(sparse, constants.ColumnQualityScore)

		assert.False(t, summary.Applicable)
	})
}

func TestHistogram(t *testing.T) {
	dataset := &models.Dataset{
		Name:    "scores",
		Columns: []string{constants.ColumnQualityScore},
		Schema:  models.Schema{constants.ColumnQualityScore: columnKind.Float},
		Rows: []models.Row{
			{constants.ColumnQualityScore: "0"},
			{constants.ColumnQualityScore: "25"},
			{constants.ColumnQualityScore: "50"},
			{constants.ColumnQualityScore: "75"},
			{constants.ColumnQualityScore: "100"},
		},
	}

	t.Run("equal-width bins over the observed range", func(t *testing.T) {
		histogram := Histogram(dataset, constants.ColumnQualityScore, 4)

		assert.Len(t, histogram, 4)
		assert.Equal(t, 0.0, histogram[0].Lo)
		assert.Equal(t, 100.0, histogram[3].Hi)

		total := 0
		for _, bin := range histogram {
			total += bin.Count
		}
		assert.Equal(t, 5, total)

		// the maximum lands in the last bin, not past it
		assert.Equal(t, 2, histogram[3].Count)
	})

	t.Run("single distinct value collapses to one bin", func(t *testing.T) {
		flat := &models.Dataset{
			Name:    "flat",
			Columns: []string{constants.ColumnQualityScore},
			Schema:  models.Schema{constants.ColumnQualityScore: columnKind.Float},
			Rows: []models.Row{
				{constants.ColumnQualityScore: "42"},
				{constants.ColumnQualityScore: "42"},
			},
		}

		histogram := Histogram(flat, constants.ColumnQualityScore, 10)

		assert.Len(t, histogram, 1)
		assert.Equal(t, models.HistogramBin{Lo: 42, Hi: 42, Count: 2}, histogram[0])
	})

	t.Run("absent column yields nil", func(t *testing.T) {
		assert.Nil(t, Histogram(dataset, constants.ColumnEnhancerLength, 4))
	})
}

func TestFunctionalDirection(t *testing.T) {
	dataset := buildEnhancerDataset()

	split := FunctionalDirection(dataset, constants.ColumnFunctionalScore)

	assert.True(t, split.Applicable)
	assert.Equal(t, 2, split.GainOfFunction)
	assert.Equal(t, 1, split.LossOfFunction)
	assert.Equal(t, 1, split.Neutral)

	assert.False(t, FunctionalDirection(buildMinimalDataset(), constants.ColumnFunctionalScore).Applicable)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(buildEnhancerDataset())

	assert.Equal(t, "enhancers", summary.Dataset)
	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 3, summary.DistinctChromosomes)
	assert.True(t, summary.QualityScore.Applicable)
	assert.False(t, summary.EnhancerLength.Applicable)
	assert.Nil(t, summary.ClinicalSigCounts)
}

func TestCompareAcrossHeterogeneousSchemas(t *testing.T) {
	store := datasetsRepo.NewStore(buildEnhancerDataset(), buildMinimalDataset())

	rows := Compare(store)

	assert.Len(t, rows, 2)

	// ordered by dataset name
	assert.Equal(t, "enhancers", rows[0].Dataset)
	assert.Equal(t, "minimal", rows[1].Dataset)

	enhancers := rows[0]
	assert.Equal(t, 4, enhancers.Rows)
	assert.Equal(t, "3", enhancers.Chromosomes)
	assert.Equal(t, "75.00", enhancers.MeanQualityScore)
	assert.Equal(t, "60.00 to 90.00", enhancers.QualityScoreRange)
	assert.Equal(t, "SNV (2)", enhancers.TopVariantType)
	assert.Equal(t, "75.0%", enhancers.DbSnpCoverage)

	minimal := rows[1]
	assert.Equal(t, 2, minimal.Rows)
	assert.Equal(t, "1", minimal.Chromosomes)
	assert.Equal(t, NotApplicable, minimal.MeanQualityScore)
	assert.Equal(t, NotApplicable, minimal.QualityScoreRange)
	assert.Equal(t, "SNV (2)", minimal.TopVariantType)
	assert.Equal(t, NotApplicable, minimal.DbSnpCoverage)
}
