package constants

// Canonical column names shared by the bundled genomic datasets. Nothing
// assumes a dataset actually has any of these: filters and summaries consult
// the dataset schema first and skip whatever is missing.
const (
	ColumnChromosome           string = "Chromosome"
	ColumnStart                string = "Start"
	ColumnEnd                  string = "End"
	ColumnDbSnpId              string = "dbSNP_ID"
	ColumnVariantType          string = "Variant_Type"
	ColumnClinicalSignificance string = "Clinical_Significance"
	ColumnQualityScore         string = "Quality_Score"
	ColumnFunctionalScore      string = "Functional_Score"
	ColumnEnhancerLength       string = "Enhancer_Length"
	ColumnPatientCount         string = "Patient_Count"
	ColumnTargetGenes          string = "Target_Genes"
	ColumnTranscriptionFactor  string = "Transcription_Factor"
	ColumnGnomadLink           string = "gnomAD_Link"
)

// SentinelAll is the dropdown default that deactivates an equality filter
// entirely ("All", "All variants", "All effects", ...).
const SentinelAll string = "All"

// NoValuePlaceholder marks an empty cell in the source files. It is a literal
// string in the data, not a null; the presence filter tests against it.
const NoValuePlaceholder string = "-"
