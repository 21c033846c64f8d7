package variants

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"genobrowse/api/models/dtos"
	"genobrowse/api/models/dtos/errors"
	"genobrowse/api/mvc"
	exportService "genobrowse/api/services/export"
	filtersService "genobrowse/api/services/filters"
	"genobrowse/api/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/mitchellh/mapstructure"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func VariantsGetByDataset(c echo.Context) error {
	fmt.Printf("[%s] - VariantsGetByDataset hit!\n", time.Now())

	dataset, specs := mvc.RetrieveCommonElements(c)
	result := filtersService.Apply(dataset, specs)

	rows := result.Rows
	// optional page size (0 = all rows)
	if sizeQP := c.QueryParam("size"); len(sizeQP) > 0 {
		if size, conversionErr := strconv.Atoi(sizeQP); conversionErr == nil && size > 0 && size < len(rows) {
			rows = rows[:size]
		}
	}

	records := make([]dtos.VariantRecord, 0, len(rows))
	for _, row := range rows {
		var record dtos.VariantRecord
		decoder, decoderErr := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &record,
		})
		if decoderErr != nil {
			continue
		}
		// decode errors on individual cells leave that field zeroed
		decoder.Decode(map[string]string(row))
		records = append(records, record)
	}

	return c.JSON(http.StatusOK, dtos.VariantsResponse{
		QueryId:  uuid.NewString(),
		Dataset:  dataset.Name,
		Total:    dataset.RowCount(),
		Filtered: len(result.Rows),
		Columns:  dataset.Columns,
		Rows:     rows,
		Records:  records,
	})
}

func VariantsCountByDataset(c echo.Context) error {
	fmt.Printf("[%s] - VariantsCountByDataset hit!\n", time.Now())

	dataset, specs := mvc.RetrieveCommonElements(c)
	result := filtersService.Apply(dataset, specs)

	return c.JSON(http.StatusOK, dtos.VariantCountResponse{
		QueryId:  uuid.NewString(),
		Dataset:  dataset.Name,
		Total:    dataset.RowCount(),
		Filtered: len(result.Rows),
	})
}

func VariantsExportCsv(c echo.Context) error {
	fmt.Printf("[%s] - VariantsExportCsv hit!\n", time.Now())

	dataset, specs := mvc.RetrieveCommonElements(c)
	result := filtersService.Apply(dataset, specs)
	columns := exportService.Columns(dataset, utils.SplitCsvParam(c.QueryParam("columns")))

	var buffer bytes.Buffer
	if err := exportService.WriteCsv(&buffer, result, columns); err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	setAttachmentHeader(c, fmt.Sprintf("%s_filtered.csv", dataset.Name))
	return c.Blob(http.StatusOK, "text/csv", buffer.Bytes())
}

func VariantsExportXlsx(c echo.Context) error {
	fmt.Printf("[%s] - VariantsExportXlsx hit!\n", time.Now())

	dataset, specs := mvc.RetrieveCommonElements(c)
	result := filtersService.Apply(dataset, specs)
	columns := exportService.Columns(dataset, utils.SplitCsvParam(c.QueryParam("columns")))

	var buffer bytes.Buffer
	if err := exportService.WriteXlsx(&buffer, result, columns); err != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(err.Error()))
	}

	setAttachmentHeader(c, fmt.Sprintf("%s_filtered.xlsx", dataset.Name))
	return c.Blob(http.StatusOK, xlsxContentType, buffer.Bytes())
}

func setAttachmentHeader(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
}
