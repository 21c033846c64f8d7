package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"genobrowse/api/contexts"
	"genobrowse/api/models"
	datasetsRepo "genobrowse/api/repositories/datasets"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func buildMiddlewareContext(t *testing.T, target string) (*contexts.BrowseContext, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()

	gc := &contexts.BrowseContext{
		Context: e.NewContext(request, recorder),
		Config:  &models.Config{},
		Store:   datasetsRepo.NewStore(&models.Dataset{Name: "enhancers", Title: "Enhancer Variants"}),
	}
	return gc, recorder
}

func passThrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return nil
	}
}

func TestMandateDatasetAttribute(t *testing.T) {
	t.Run("resolves a known dataset", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset?dataset=enhancers")

		var called bool
		assert.NoError(t, MandateDatasetAttribute(passThrough(&called))(gc))

		assert.True(t, called)
		assert.Equal(t, "enhancers", gc.Dataset.Name)
	})

	t.Run("missing parameter is a bad request", func(t *testing.T) {
		gc, recorder := buildMiddlewareContext(t, "/variants/get/by/dataset")

		var called bool
		assert.NoError(t, MandateDatasetAttribute(passThrough(&called))(gc))

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown dataset is not found", func(t *testing.T) {
		gc, recorder := buildMiddlewareContext(t, "/variants/get/by/dataset?dataset=nope")

		var called bool
		assert.NoError(t, MandateDatasetAttribute(passThrough(&called))(gc))

		assert.False(t, called)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestMandateDatasetPathParam(t *testing.T) {
	gc, _ := buildMiddlewareContext(t, "/datasets/enhancers/schema")
	gc.SetParamNames("dataset")
	gc.SetParamValues("enhancers")

	var called bool
	assert.NoError(t, MandateDatasetPathParam(passThrough(&called))(gc))

	assert.True(t, called)
	assert.Equal(t, "enhancers", gc.Dataset.Name)
}

func TestValidateOptionalChromosomeAttribute(t *testing.T) {
	t.Run("valid chromosome is forwarded untouched", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset?chromosome=chr21")

		var called bool
		assert.NoError(t, ValidateOptionalChromosomeAttribute(passThrough(&called))(gc))

		assert.True(t, called)
		assert.Equal(t, "chr21", gc.Chromosome)
	})

	t.Run("absent chromosome passes through", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset")

		var called bool
		assert.NoError(t, ValidateOptionalChromosomeAttribute(passThrough(&called))(gc))

		assert.True(t, called)
		assert.Empty(t, gc.Chromosome)
	})

	t.Run("invalid chromosome is rejected", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset?chromosome=chr99")

		var called bool
		err := ValidateOptionalChromosomeAttribute(passThrough(&called))(gc)

		assert.False(t, called)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestMandateCalibratedBounds(t *testing.T) {
	t.Run("both bounds set and balanced", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset?lowerBound=100&upperBound=500")

		var called bool
		assert.NoError(t, MandateCalibratedBounds(passThrough(&called))(gc))

		assert.True(t, called)
		assert.True(t, gc.BoundsSet)
		assert.Equal(t, 100, gc.LowerBound)
		assert.Equal(t, 500, gc.UpperBound)
	})

	t.Run("neither bound leaves filtering off", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset")

		var called bool
		assert.NoError(t, MandateCalibratedBounds(passThrough(&called))(gc))

		assert.True(t, called)
		assert.False(t, gc.BoundsSet)
	})

	t.Run("one-sided bounds are rejected", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset?lowerBound=100")

		var called bool
		err := MandateCalibratedBounds(passThrough(&called))(gc)

		assert.False(t, called)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("inverted bounds are rejected", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset?lowerBound=500&upperBound=100")

		var called bool
		err := MandateCalibratedBounds(passThrough(&called))(gc)

		assert.False(t, called)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestValidateScoreBounds(t *testing.T) {
	t.Run("parses both sides", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset?scoreMin=0.5&scoreMax=0.9")

		var called bool
		assert.NoError(t, ValidateScoreBounds(passThrough(&called))(gc))

		assert.True(t, called)
		assert.NotNil(t, gc.ScoreMin)
		assert.NotNil(t, gc.ScoreMax)
		assert.Equal(t, 0.5, *gc.ScoreMin)
		assert.Equal(t, 0.9, *gc.ScoreMax)
	})

	t.Run("malformed bound is dropped not fatal", func(t *testing.T) {
		gc, _ := buildMiddlewareContext(t, "/variants/get/by/dataset?scoreMin=abc&scoreMax=0.9")

		var called bool
		assert.NoError(t, ValidateScoreBounds(passThrough(&called))(gc))

		assert.True(t, called)
		assert.Nil(t, gc.ScoreMin)
		assert.NotNil(t, gc.ScoreMax)
	})
}
