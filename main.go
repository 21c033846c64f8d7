package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"genobrowse/api/contexts"
	gam "genobrowse/api/middleware"
	"genobrowse/api/models"
	serviceInfo "genobrowse/api/models/constants/service-info"
	datasetsMvc "genobrowse/api/mvc/datasets"
	serviceInfoMvc "genobrowse/api/mvc/service-info"
	summariesMvc "genobrowse/api/mvc/summaries"
	variantsMvc "genobrowse/api/mvc/variants"
	datasetsRepo "genobrowse/api/repositories/datasets"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tDataset Manifest Path : %s \n"+
		"\tDefault Histogram Bins : %d\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.ManifestPath,
		cfg.Api.HistogramBins,
		cfg.Api.Port)
	// --

	// Load datasets once; they are immutable and shared
	// read-only for the life of the process
	manifest, err := models.LoadManifest(cfg.Api.ManifestPath)
	if err != nil {
		fmt.Printf("Failed to read dataset manifest : %v\n", err)
		os.Exit(2)
	}

	store, err := datasetsRepo.Load(manifest)
	if err != nil {
		// a missing or malformed source is fatal; no partial load
		fmt.Printf("Failed to load datasets : %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("Loaded datasets : %v\n", store.Names())

	// Instantiate Server
	e := echo.New()

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	// -- Override handlers with "custom GenoBrowse" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.BrowseContext{
				Context: c,
				Config:  &cfg,
				Store:   store,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Datasets
	e.GET("/datasets/overview", datasetsMvc.GetDatasetsOverview)
	e.GET("/datasets/:dataset/schema", datasetsMvc.GetDatasetSchema,
		// middleware
		gam.MandateDatasetPathParam)

	// -- Variants
	e.GET("/variants/get/by/dataset", variantsMvc.VariantsGetByDataset,
		// middleware
		gam.MandateDatasetAttribute,
		gam.ValidateOptionalChromosomeAttribute,
		gam.MandateCalibratedBounds,
		gam.ValidateScoreBounds)
	e.GET("/variants/count/by/dataset", variantsMvc.VariantsCountByDataset,
		// middleware
		gam.MandateDatasetAttribute,
		gam.ValidateOptionalChromosomeAttribute,
		gam.MandateCalibratedBounds,
		gam.ValidateScoreBounds)

	e.GET("/variants/export/csv", variantsMvc.VariantsExportCsv,
		// middleware
		gam.MandateDatasetAttribute,
		gam.ValidateOptionalChromosomeAttribute,
		gam.MandateCalibratedBounds,
		gam.ValidateScoreBounds)
	e.GET("/variants/export/xlsx", variantsMvc.VariantsExportXlsx,
		// middleware
		gam.MandateDatasetAttribute,
		gam.ValidateOptionalChromosomeAttribute,
		gam.MandateCalibratedBounds,
		gam.ValidateScoreBounds)

	// -- Summaries
	e.GET("/summaries/overview", summariesMvc.GetDatasetSummary,
		// middleware
		gam.MandateDatasetAttribute)
	e.GET("/summaries/comparison", summariesMvc.GetDatasetsComparison)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
