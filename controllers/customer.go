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

// CustomerInput defines the expected JSON structure for creating or fully
// replacing a customer. Dates arrive as YYYY-MM-DD strings from the form.
type CustomerInput struct {
	Name             string  `json:"name" binding:"required"`
	Mobile           string  `json:"mobile" binding:"required"`
	Address          string  `json:"address" binding:"required"`
	City             string  `json:"city" binding:"required"`
	BillNumber       string  `json:"billNumber" binding:"required"`
	ModelName        string  `json:"modelName" binding:"required"`
	Price            float64 `json:"price" binding:"min=0"`
	WarrantyDateFrom string  `json:"warrantyDateFrom"`
	WarrantyDateTo   string  `json:"warrantyDateTo"`
	InvoiceDate      string  `json:"invoiceDate"`
}

// parseOptionalDate turns an optional YYYY-MM-DD form value into a *time.Time.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseInputDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (in *CustomerInput) apply(customer *models.Customer) error {
	warrantyFrom, err := parseOptionalDate(in.WarrantyDateFrom)
	if err != nil {
		return errors.New("invalid warrantyDateFrom, expected YYYY-MM-DD")
	}
	warrantyTo, err := parseOptionalDate(in.WarrantyDateTo)
	if err != nil {
		return errors.New("invalid warrantyDateTo, expected YYYY-MM-DD")
	}
	invoiceDate, err := parseOptionalDate(in.InvoiceDate)
	if err != nil {
		return errors.New("invalid invoiceDate, expected YYYY-MM-DD")
	}

	customer.Name = in.Name
	customer.Mobile = in.Mobile
	customer.Address = in.Address
	customer.City = in.City
	customer.BillNumber = in.BillNumber
	customer.ModelName = in.ModelName
	customer.Price = in.Price
	customer.WarrantyDateFrom = warrantyFrom
	customer.WarrantyDateTo = warrantyTo
	customer.InvoiceDate = invoiceDate
	return nil
}

// CreateCustomer creates a new customer record
func CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Mobile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid mobile number format")
		return
	}

	// Check if mobile already exists
	var existingCustomer models.Customer
	if err := config.DB.Where("mobile = ?", input.Mobile).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this mobile number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{ID: uuid.New()}
	if err := input.apply(&customer); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customer records
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("name asc").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", customerUUID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer fully replaces an existing customer from the edit form
func UpdateCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Mobile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid mobile number format")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", customerUUID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Mobile must stay unique across customers
	if customer.Mobile != input.Mobile {
		var existingCustomer models.Customer
		if err := config.DB.Where("mobile = ?", input.Mobile).
			First(&existingCustomer).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another customer with this mobile number already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := input.apply(&customer); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer soft deletes a customer
func DeleteCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	result := config.DB.Where("id = ?", customerUUID).Delete(&models.Customer{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
