package models

// Aggregate shapes produced by the summaries service. Everything here is
// derived per request and never cached.

type CategoryCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// NumericSummary reports mean/min/max over a numeric column. Applicable is
// false when the column is absent or no row holds a parseable value; callers
// render that as "N/A" instead of receiving a NaN.
type NumericSummary struct {
	Applicable bool    `json:"applicable"`
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
}

type HistogramBin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// DirectionSplit buckets rows by the sign of a functional score column:
// positive scores read as gain-of-function, negative as loss-of-function.
type DirectionSplit struct {
	Applicable     bool `json:"applicable"`
	GainOfFunction int  `json:"gainOfFunction"`
	LossOfFunction int  `json:"lossOfFunction"`
	Neutral        int  `json:"neutral"`
}

type SummaryRow struct {
	Dataset             string          `json:"dataset"`
	Title               string          `json:"title"`
	TotalRows           int             `json:"totalRows"`
	DistinctChromosomes int             `json:"distinctChromosomes"`
	VariantTypeCounts   []CategoryCount `json:"variantTypeCounts,omitempty"`
	ClinicalSigCounts   []CategoryCount `json:"clinicalSignificanceCounts,omitempty"`
	QualityScore        NumericSummary  `json:"qualityScore"`
	EnhancerLength      NumericSummary  `json:"enhancerLength"`
	FunctionalDirection DirectionSplit  `json:"functionalDirection"`
}

// ComparisonRow is one line of the cross-dataset comparison table. Statistics
// whose backing column is missing from a dataset's schema carry the "N/A"
// placeholder, so heterogeneous schemas always compare cleanly.
type ComparisonRow struct {
	Dataset           string `json:"dataset"`
	Title             string `json:"title"`
	Rows              int    `json:"rows"`
	Chromosomes       string `json:"chromosomes"`
	MeanQualityScore  string `json:"meanQualityScore"`
	QualityScoreRange string `json:"qualityScoreRange"`
	TopVariantType    string `json:"topVariantType"`
	DbSnpCoverage     string `json:"dbSnpCoverage"`
}
