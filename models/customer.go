package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`

	Name       string  `gorm:"not null" json:"name"`
	Mobile     string  `gorm:"not null;uniqueIndex" json:"mobile"`
	Address    string  `gorm:"not null" json:"address"`
	City       string  `gorm:"not null" json:"city"`
	BillNumber string  `gorm:"not null" json:"billNumber"`
	ModelName  string  `gorm:"not null" json:"modelName"`
	Price      float64 `gorm:"type:decimal(10,2)" json:"price"`

	WarrantyDateFrom *time.Time `json:"warrantyDateFrom"`
	WarrantyDateTo   *time.Time `json:"warrantyDateTo"`
	InvoiceDate      *time.Time `json:"invoiceDate"`

	Visits []Visit `gorm:"foreignKey:CustomerID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
