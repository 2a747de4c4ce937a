package controllers

import (
	"errors"
	"net/http"
	"time"

	"harshenterprise-backend/config"
	"harshenterprise-backend/models"
	"harshenterprise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitInput defines the expected JSON structure for creating or fully
// replacing a visit. Dates arrive as YYYY-MM-DD strings from the form.
type VisitInput struct {
	CustomerID         string  `json:"customerId"`
	CustomerName       string  `json:"customerName" binding:"required"`
	EmployeeName       string  `json:"employeeName"`
	EmployeeMobile     string  `json:"employeeMobile"`
	ServiceDescription string  `json:"serviceDescription"`
	ServiceCharges     float64 `json:"serviceCharges" binding:"min=0"`
	ServiceAddress     string  `json:"serviceAddress"`
	VisitDate          string  `json:"visitDate"`
	NextVisitDate      string  `json:"nextVisitDate"`
	InstallationDate   string  `json:"installationDate"`
	VisitTime          string  `json:"visitTime"`
	PaymentStatus      string  `json:"paymentStatus" binding:"omitempty,oneof=Pending Paid"`
	VisitStatus        string  `json:"visitStatus"`
}

func (in *VisitInput) apply(visit *models.Visit) error {
	visitDate, err := parseOptionalDate(in.VisitDate)
	if err != nil {
		return errors.New("invalid visitDate, expected YYYY-MM-DD")
	}
	nextVisitDate, err := parseOptionalDate(in.NextVisitDate)
	if err != nil {
		return errors.New("invalid nextVisitDate, expected YYYY-MM-DD")
	}
	installationDate, err := parseOptionalDate(in.InstallationDate)
	if err != nil {
		return errors.New("invalid installationDate, expected YYYY-MM-DD")
	}

	// The follow-up defaults to visit date + 3 calendar months; an explicit
	// caller value wins.
	if nextVisitDate == nil && visitDate != nil {
		next := utils.NextVisitDate(*visitDate)
		nextVisitDate = &next
	}

	// Resolve the optional customer relation and denormalize the name.
	if in.CustomerID != "" {
		customerUUID, err := uuid.Parse(in.CustomerID)
		if err != nil {
			return errors.New("invalid customerId format")
		}
		var customer models.Customer
		if err := config.DB.Where("id = ?", customerUUID).First(&customer).Error; err != nil {
			return errors.New("customer not found: " + in.CustomerID)
		}
		visit.CustomerID = &customerUUID
		visit.CustomerName = customer.Name
	} else {
		visit.CustomerID = nil
		visit.CustomerName = in.CustomerName
	}

	visit.EmployeeName = in.EmployeeName
	visit.EmployeeMobile = in.EmployeeMobile
	visit.ServiceDescription = in.ServiceDescription
	visit.ServiceCharges = in.ServiceCharges
	visit.ServiceAddress = in.ServiceAddress
	visit.VisitDate = visitDate
	visit.NextVisitDate = nextVisitDate
	visit.InstallationDate = installationDate
	visit.VisitTime = in.VisitTime
	visit.PaymentStatus = in.PaymentStatus
	if visit.PaymentStatus == "" {
		visit.PaymentStatus = models.PaymentPending
	}
	visit.VisitStatus = in.VisitStatus
	if visit.VisitStatus == "" {
		visit.VisitStatus = "Pending"
	}
	return nil
}

// CreateVisit creates a new visit record
func CreateVisit(c *gin.Context) {
	var input VisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	visit := models.Visit{ID: uuid.New()}
	if err := input.apply(&visit); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Create(&visit).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create visit")
		return
	}

	c.JSON(http.StatusCreated, visit)
}

// GetVisits retrieves all visits, most recent follow-up first
func GetVisits(c *gin.Context) {
	var visits []models.Visit
	if err := config.DB.Order("next_visit_date desc").Find(&visits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visits")
		return
	}

	c.JSON(http.StatusOK, visits)
}

// GetVisit retrieves a specific visit by ID
func GetVisit(c *gin.Context) {
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

	c.JSON(http.StatusOK, visit)
}

// UpdateVisit fully replaces an existing visit from the edit form
func UpdateVisit(c *gin.Context) {
	visitUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visit ID format")
		return
	}

	var input VisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
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

	if err := input.apply(&visit); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Save(&visit).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update visit")
		return
	}

	c.JSON(http.StatusOK, visit)
}

// DeleteVisit soft deletes a visit
func DeleteVisit(c *gin.Context) {
	visitUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visit ID format")
		return
	}

	result := config.DB.Where("id = ?", visitUUID).Delete(&models.Visit{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete visit")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Visit not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Visit deleted successfully"})
}

// dayBounds returns the [start, end) window for a calendar day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := utils.BeginningOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// GetVisitsByDate returns visits whose follow-up falls on the given ISO date
func GetVisitsByDate(c *gin.Context) {
	date, err := utils.ParseInputDate(c.Param("date"))
	if err != nil || date.IsZero() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	start, end := dayBounds(date)
	var visits []models.Visit
	if err := config.DB.
		Where("next_visit_date >= ? AND next_visit_date < ?", start, end).
		Order("next_visit_date desc").
		Find(&visits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visits")
		return
	}

	c.JSON(http.StatusOK, visits)
}

// GetTodayVisits returns visits whose follow-up is due today
func GetTodayVisits(c *gin.Context) {
	start, end := dayBounds(time.Now())
	var visits []models.Visit
	if err := config.DB.
		Where("next_visit_date >= ? AND next_visit_date < ?", start, end).
		Order("next_visit_date desc").
		Find(&visits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visits")
		return
	}

	c.JSON(http.StatusOK, visits)
}

// GetTodayVisitCount returns the number of visits due today
func GetTodayVisitCount(c *gin.Context) {
	start, end := dayBounds(time.Now())
	var count int64
	if err := config.DB.Model(&models.Visit{}).
		Where("next_visit_date >= ? AND next_visit_date < ?", start, end).
		Count(&count).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count visits")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetUpcomingVisitCount returns the number of visits due strictly after today
func GetUpcomingVisitCount(c *gin.Context) {
	_, end := dayBounds(time.Now())
	var count int64
	if err := config.DB.Model(&models.Visit{}).
		Where("next_visit_date >= ?", end).
		Count(&count).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count visits")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetTotalRevenue returns the sum of service charges across all visits
func GetTotalRevenue(c *gin.Context) {
	var total float64
	if err := config.DB.Model(&models.Visit{}).
		Select("COALESCE(SUM(service_charges), 0)").
		Scan(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute revenue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalRevenue": total})
}
