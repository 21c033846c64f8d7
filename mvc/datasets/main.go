package datasets

import (
	"fmt"
	"net/http"
	"time"

	"genobrowse/api/contexts"
	"genobrowse/api/models/dtos"

	"github.com/labstack/echo"
)

func GetDatasetsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetDatasetsOverview hit!\n", time.Now())
	gc := c.(*contexts.BrowseContext)

	overviews := []dtos.DatasetOverview{}
	for _, name := range gc.Store.Names() {
		dataset, ok := gc.Store.Dataset(name)
		if !ok {
			continue
		}
		overviews = append(overviews, dtos.DatasetOverview{
			Name:    dataset.Name,
			Title:   dataset.Title,
			Rows:    dataset.RowCount(),
			Columns: dataset.Columns,
			Schema:  dataset.Schema,
		})
	}

	return c.JSON(http.StatusOK, dtos.DatasetsOverviewResponse{
		Count:    len(overviews),
		Datasets: overviews,
	})
}

// GetDatasetSchema serves the schema descriptor the UI consults before
// constructing its filter controls.
func GetDatasetSchema(c echo.Context) error {
	fmt.Printf("[%s] - GetDatasetSchema hit!\n", time.Now())
	dataset := c.(*contexts.BrowseContext).Dataset

	columns := []map[string]interface{}{}
	for _, column := range dataset.Columns {
		columns = append(columns, map[string]interface{}{
			"name": column,
			"kind": dataset.Schema.KindOf(column),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"dataset": dataset.Name,
		"columns": columns,
	})
}
