// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"harshenterprise-backend/config"
	"harshenterprise-backend/models"
	"harshenterprise-backend/report"
	"harshenterprise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVisitInvoice renders the printable invoice for one visit as a PDF.
func GetVisitInvoice(c *gin.Context) {
	visitUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visit ID format")
		return
	}

	var visit models.Visit
	if err := config.DB.Where("id = ?", visitUUID).First(&visit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Visit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	now := time.Now()
	invoiceNo := "INV-" + now.Format("20060102") + "-" + utils.GenerateRandomString(6)

	pdfBytes, err := report.RenderInvoicePDF(visit, invoiceNo, now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render invoice")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+invoiceNo+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
