package summaries

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"genobrowse/api/contexts"
	"genobrowse/api/models"
	"genobrowse/api/models/constants"
	s "genobrowse/api/models/constants/sort"
	"genobrowse/api/models/dtos"
	summariesService "genobrowse/api/services/summaries"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
)

const topTranscriptionFactors = 10

func GetDatasetSummary(c echo.Context) error {
	fmt.Printf("[%s] - GetDatasetSummary hit!\n", time.Now())
	gc := c.(*contexts.BrowseContext)
	dataset := gc.Dataset

	bins := gc.Config.Api.HistogramBins
	if binsQP := c.QueryParam("bins"); len(binsQP) > 0 {
		if parsed, conversionErr := strconv.Atoi(binsQP); conversionErr == nil && parsed > 0 {
			bins = parsed
		}
	}

	return c.JSON(http.StatusOK, dtos.SummaryResponse{
		Summary: summariesService.Summarize(dataset),
		Charts:  buildChartConfigs(dataset, c.QueryParam("histogramColumn"), bins),
	})
}

func GetDatasetsComparison(c echo.Context) error {
	fmt.Printf("[%s] - GetDatasetsComparison hit!\n", time.Now())
	gc := c.(*contexts.BrowseContext)

	rows := summariesService.Compare(gc.Store)

	return c.JSON(http.StatusOK, dtos.ComparisonResponse{
		Count: len(rows),
		Rows:  rows,
	})
}

// buildChartConfigs assembles the render-ready chart descriptions for a
// dataset. Each chart only appears when its backing column exists, so
// heterogeneous datasets simply get fewer charts.
func buildChartConfigs(dataset *models.Dataset, histogramColumn string, bins int) []interface{} {
	configs := []interface{}{}

	if counts := summariesService.CategoryCounts(dataset, constants.ColumnChromosome, s.Alphabetical, 0); len(counts) > 0 {
		chart := gabs.New()
		chart.Set("bar", "chartType")
		chart.Set("Variants per Chromosome", "title")
		chart.Set(constants.ColumnChromosome, "xAxis")
		chart.Set("Number of Variants", "yAxis")
		chart.Array("series")
		for _, count := range counts {
			chart.ArrayAppend(map[string]interface{}{
				"label": count.Key,
				"value": count.Count,
			}, "series")
		}
		configs = append(configs, chart.Data())
	}

	if histogramColumn == "" {
		histogramColumn = constants.ColumnEnhancerLength
	}
	if histogram := summariesService.Histogram(dataset, histogramColumn, bins); len(histogram) > 0 {
		chart := gabs.New()
		chart.Set("histogram", "chartType")
		chart.Set(fmt.Sprintf("%s Distribution", histogramColumn), "title")
		chart.Set(histogramColumn, "xAxis")
		chart.Set("Count", "yAxis")
		chart.Array("bins")
		for _, bin := range histogram {
			chart.ArrayAppend(map[string]interface{}{
				"lo":    bin.Lo,
				"hi":    bin.Hi,
				"count": bin.Count,
			}, "bins")
		}
		configs = append(configs, chart.Data())
	}

	if top := summariesService.CategoryCounts(dataset, constants.ColumnTranscriptionFactor, s.CountDescending, topTranscriptionFactors); len(top) > 0 {
		chart := gabs.New()
		chart.Set("ranked-list", "chartType")
		chart.Set("Top Transcription Factors", "title")
		chart.Array("series")
		for _, count := range top {
			chart.ArrayAppend(map[string]interface{}{
				"label": count.Key,
				"value": count.Count,
			}, "series")
		}
		configs = append(configs, chart.Data())
	}

	return configs
}
