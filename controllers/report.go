// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"harshenterprise-backend/config"
	"harshenterprise-backend/models"
	"harshenterprise-backend/report"
	"harshenterprise-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetVisitReport exports the filtered visit report as a downloadable
// document. Query params: start, end (YYYY-MM-DD), customer (substring),
// format (pdf|xlsx, default pdf).
func GetVisitReport(c *gin.Context) {
	filter := report.Filter{CustomerName: c.Query("customer")}

	if s := c.Query("start"); s != "" {
		t, err := utils.ParseInputDate(s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		filter.StartDate = t
	}
	if s := c.Query("end"); s != "" {
		t, err := utils.ParseInputDate(s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		filter.EndDate = t
	}

	var visits []models.Visit
	if err := config.DB.Order("next_visit_date desc").Find(&visits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visits")
		return
	}

	now := time.Now()
	filtered := report.Apply(visits, filter)
	rows := report.Rows(visits, filtered, now)
	total := report.TotalRevenue(filtered)

	switch c.DefaultQuery("format", "pdf") {
	case "pdf":
		out, err := report.ExportPDF(rows, total, now)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export report")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+report.ReportFileName(now)+`"`)
		c.Data(http.StatusOK, "application/pdf", out)
	case "xlsx":
		out, err := report.ExportExcel(rows, total)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export report")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+report.ExcelFileName(now)+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown format, expected pdf or xlsx")
	}
}
