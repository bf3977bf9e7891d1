package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/alacham/dochazka/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	Reports *services.ReportService
}

func NewExportHandler(reports *services.ReportService) *ExportHandler {
	return &ExportHandler{Reports: reports}
}

// CSV streams the filtered report: one fixed header row plus one row
// per event.
func (h *ExportHandler) CSV(c *gin.Context) {
	startDate, endDate, employeeID := reportFilter(c, h.Reports)

	rows, err := h.Reports.Rows(startDate, endDate, employeeID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "could not load report")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", attachment("attendance", "csv", startDate, endDate))

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(services.ReportHeader); err != nil {
		return
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.EmployeeName, row.Status, row.Date, row.Time}); err != nil {
			return
		}
	}
	writer.Flush()
}

// XLSX writes the same rows as the CSV to a single-sheet workbook.
func (h *ExportHandler) XLSX(c *gin.Context) {
	startDate, endDate, employeeID := reportFilter(c, h.Reports)

	rows, err := h.Reports.Rows(startDate, endDate, employeeID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "could not load report")
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	header := make([]interface{}, len(services.ReportHeader))
	for i, column := range services.ReportHeader {
		header[i] = column
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		renderError(c, http.StatusInternalServerError, "could not build workbook")
		return
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{row.EmployeeName, row.Status, row.Date, row.Time}
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			renderError(c, http.StatusInternalServerError, "could not build workbook")
			return
		}
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", attachment("attendance", "xlsx", startDate, endDate))
	_ = file.Write(c.Writer)
}

// QuartersCSV streams the daily hours table with quarter-hour
// rounding applied.
func (h *ExportHandler) QuartersCSV(c *gin.Context) {
	startDate, endDate, employeeID := reportFilter(c, h.Reports)

	rows, err := h.Reports.Rows(startDate, endDate, employeeID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "could not load report")
		return
	}
	dailyHours := services.DailyHours(rows)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", attachment("attendance_quarters", "csv", startDate, endDate))

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(services.QuarterHeader); err != nil {
		return
	}
	for _, row := range dailyHours {
		if err := writer.Write([]string{row.EmployeeName, row.Date, row.ActualHours, row.QuarterHours}); err != nil {
			return
		}
	}
	writer.Flush()
}

func attachment(prefix, extension, startDate, endDate string) string {
	return fmt.Sprintf("attachment; filename=%s_%s_%s.%s", prefix, startDate, endDate, extension)
}
