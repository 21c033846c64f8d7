package mvc

import (
	"genobrowse/api/contexts"
	"genobrowse/api/models"
	"genobrowse/api/models/constants"
	filtersService "genobrowse/api/services/filters"
	summariesService "genobrowse/api/services/summaries"
	"genobrowse/api/utils"

	"github.com/labstack/echo"
)

// RetrieveCommonElements resolves the active dataset and assembles this
// request's FilterSpecs from its query parameters. Specs are created fresh
// on every call; anything targeting a column the dataset lacks is dropped by
// the engine, and an "All" selection deactivates its spec entirely.
func RetrieveCommonElements(c echo.Context) (*models.Dataset, []filtersService.FilterSpec) {
	gc := c.(*contexts.BrowseContext)
	dataset := gc.Dataset

	specs := []filtersService.FilterSpec{}

	if gc.Chromosome != "" {
		specs = append(specs, filtersService.NewEqualityFilter(constants.ColumnChromosome, gc.Chromosome))
	}

	if gc.BoundsSet {
		specs = append(specs, filtersService.NewRangeContainmentFilter(
			constants.ColumnStart, constants.ColumnEnd,
			float64(gc.LowerBound), float64(gc.UpperBound)))
	}

	if variantType := c.QueryParam("variantType"); variantType != "" {
		specs = append(specs, filtersService.NewEqualityFilter(constants.ColumnVariantType, variantType))
	}

	if clinicalSignificance := c.QueryParam("clinicalSignificance"); clinicalSignificance != "" {
		specs = append(specs, filtersService.NewEqualityFilter(constants.ColumnClinicalSignificance, clinicalSignificance))
	}

	if search := c.QueryParam("search"); search != "" {
		column := c.QueryParam("searchColumn")
		if column == "" {
			column = constants.ColumnDbSnpId
		}
		specs = append(specs, filtersService.NewSubstringFilter(column, search))
	}

	if gc.ScoreMin != nil || gc.ScoreMax != nil {
		column := c.QueryParam("scoreColumn")
		if column == "" {
			column = constants.ColumnQualityScore
		}
		// a missing side clamps to the dataset's natural bound
		if natural := summariesService.NumericSummary(dataset, column); natural.Applicable {
			min, max := natural.Min, natural.Max
			if gc.ScoreMin != nil {
				min = *gc.ScoreMin
			}
			if gc.ScoreMax != nil {
				max = *gc.ScoreMax
			}
			specs = append(specs, filtersService.NewNumericRangeFilter(column, min, max))
		}
	}

	for _, column := range utils.SplitCsvParam(c.QueryParam("present")) {
		specs = append(specs, filtersService.NewPresenceFilter(column))
	}

	return dataset, specs
}
