package dtos

import (
	"time"

	"genobrowse/api/models"
)

// -- datasets

type DatasetsOverviewResponse struct {
	Count    int               `json:"count"`
	Datasets []DatasetOverview `json:"datasets"`
}

type DatasetOverview struct {
	Name    string        `json:"name"`
	Title   string        `json:"title"`
	Rows    int           `json:"rows"`
	Columns []string      `json:"columns"`
	Schema  models.Schema `json:"schema"`
}

// -- variants

type VariantsResponse struct {
	QueryId  string       `json:"queryId"`
	Dataset  string       `json:"dataset"`
	Total    int          `json:"total"`
	Filtered int          `json:"filtered"`
	Columns  []string     `json:"columns"`
	Rows     []models.Row `json:"rows"`
	// typed projection of the well-known genomic fields; datasets lacking a
	// field leave its zero value in place
	Records []VariantRecord `json:"records"`
}

type VariantCountResponse struct {
	QueryId  string `json:"queryId"`
	Dataset  string `json:"dataset"`
	Total    int    `json:"total"`
	Filtered int    `json:"filtered"`
}

type VariantRecord struct {
	Chromosome           string  `json:"chromosome" mapstructure:"Chromosome"`
	Start                int     `json:"start" mapstructure:"Start"`
	End                  int     `json:"end" mapstructure:"End"`
	DbSnpId              string  `json:"dbSnpId" mapstructure:"dbSNP_ID"`
	VariantType          string  `json:"variantType" mapstructure:"Variant_Type"`
	ClinicalSignificance string  `json:"clinicalSignificance" mapstructure:"Clinical_Significance"`
	QualityScore         float64 `json:"qualityScore" mapstructure:"Quality_Score"`
	FunctionalScore      float64 `json:"functionalScore" mapstructure:"Functional_Score"`
	EnhancerLength       int     `json:"enhancerLength" mapstructure:"Enhancer_Length"`
	PatientCount         int     `json:"patientCount" mapstructure:"Patient_Count"`
	TargetGenes          string  `json:"targetGenes" mapstructure:"Target_Genes"`
	TranscriptionFactor  string  `json:"transcriptionFactor" mapstructure:"Transcription_Factor"`
	GnomadLink           string  `json:"gnomadLink" mapstructure:"gnomAD_Link"`
}

// -- summaries

type SummaryResponse struct {
	Summary models.SummaryRow `json:"summary"`
	Charts  []interface{}     `json:"charts"`
}

type ComparisonResponse struct {
	Count int                    `json:"count"`
	Rows  []models.ComparisonRow `json:"rows"`
}

// -- errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
