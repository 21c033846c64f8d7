package middleware

import (
	"fmt"
	"strconv"

	"genobrowse/api/contexts"

	"github.com/labstack/echo"
)

/*
Echo middleware to parse the optional `scoreMin` / `scoreMax` numeric-range
query parameters. A malformed bound is dropped rather than failing the
request; the handler falls back to the dataset's natural min/max for any
missing side.
*/
func ValidateScoreBounds(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.BrowseContext)

		scoreMinQP := c.QueryParam("scoreMin")
		if len(scoreMinQP) > 0 {
			min, conversionErr := strconv.ParseFloat(scoreMinQP, 64)
			if conversionErr == nil {
				gc.ScoreMin = &min
			} else {
				fmt.Printf("Error parsing scoreMin: %s, [%s] - ignoring\n", scoreMinQP, conversionErr)
			}
		}

		scoreMaxQP := c.QueryParam("scoreMax")
		if len(scoreMaxQP) > 0 {
			max, conversionErr := strconv.ParseFloat(scoreMaxQP, 64)
			if conversionErr == nil {
				gc.ScoreMax = &max
			} else {
				fmt.Printf("Error parsing scoreMax: %s, [%s] - ignoring\n", scoreMaxQP, conversionErr)
			}
		}

		return next(gc)
	}
}
