package middleware

import (
	"net/http"

	"genobrowse/api/contexts"
	"genobrowse/api/models/constants/chromosome"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a `chromosome` HTTP query parameter is valid
if provided. The raw value is forwarded untouched: equality filtering
against the dataset is case-sensitive and exact.
*/
func ValidateOptionalChromosomeAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		chromQP := c.QueryParam("chromosome")
		if len(chromQP) > 0 {
			if !chromosome.IsValidHumanChromosome(chromQP) {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'chromosome' query parameter! Check your input")
			}

			gc := c.(*contexts.BrowseContext)
			gc.Chromosome = chromQP

			return next(gc)
		}

		return next(c)
	}
}
