package contexts

import (
	"genobrowse/api/models"
	datasetsRepo "genobrowse/api/repositories/datasets"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the dataset registry and other variables
	BrowseContext struct {
		echo.Context
		Config *models.Config
		Store  *datasetsRepo.Store

		// resolved per request by middleware; never shared across requests
		Dataset    *models.Dataset
		Chromosome string
		LowerBound int
		UpperBound int
		BoundsSet  bool
		ScoreMin   *float64 // simulate "nullable" float
		ScoreMax   *float64
	}
)
