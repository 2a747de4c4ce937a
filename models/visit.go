package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment status is a closed two-value enum.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

type Visit struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`

	// CustomerID links the visit to a customer record when one was picked
	// from the customer list; CustomerName is denormalized for display and
	// still accepted as free text when no record is linked.
	CustomerID   *uuid.UUID `gorm:"type:uuid;index" json:"customerId"`
	CustomerName string     `gorm:"not null;index" json:"customerName"`

	EmployeeName       string  `json:"employeeName"`
	EmployeeMobile     string  `json:"employeeMobile"`
	ServiceDescription string  `gorm:"type:text" json:"serviceDescription"`
	ServiceCharges     float64 `gorm:"type:decimal(10,2)" json:"serviceCharges"`
	ServiceAddress     string  `gorm:"type:text" json:"serviceAddress"`

	VisitDate        *time.Time `json:"visitDate"`
	NextVisitDate    *time.Time `gorm:"index" json:"nextVisitDate"`
	InstallationDate *time.Time `json:"installationDate"`
	VisitTime        string     `json:"visitTime"`

	PaymentStatus string `gorm:"type:varchar(20);default:'Pending'" json:"paymentStatus"`
	VisitStatus   string `gorm:"type:varchar(20);default:'Pending'" json:"visitStatus"`

	gorm.Model `json:"-"`
}

func (v *Visit) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
