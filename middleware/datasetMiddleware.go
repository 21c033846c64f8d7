package middleware

import (
	"fmt"
	"net/http"

	"genobrowse/api/contexts"
	"genobrowse/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a valid `dataset` HTTP query parameter was provided
*/
func MandateDatasetAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for dataset query parameter
		name := c.QueryParam("dataset")
		if len(name) == 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("missing 'dataset' query parameter"))
		}

		gc := c.(*contexts.BrowseContext)
		dataset, ok := gc.Store.Dataset(name)
		if !ok {
			fmt.Printf("Unknown dataset %s\n", name)

			return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(
				fmt.Sprintf("unknown dataset %s - available datasets : %v", name, gc.Store.Names())))
		}

		// forward a type-safe value down the pipeline
		gc.Dataset = dataset

		return next(gc)
	}
}

func MandateDatasetPathParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("dataset")

		gc := c.(*contexts.BrowseContext)
		dataset, ok := gc.Store.Dataset(name)
		if !ok {
			fmt.Printf("Unknown dataset %s\n", name)

			return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(
				fmt.Sprintf("unknown dataset %s - available datasets : %v", name, gc.Store.Names())))
		}

		gc.Dataset = dataset

		return next(gc)
	}
}
