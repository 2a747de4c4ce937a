package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records every follow-up SMS the scheduler attempted,
// successful or not, so a visit is never reminded twice for the same day.
type ReminderLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	VisitID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"visitId"`
	CustomerName string     `json:"customerName"`
	Mobile       string     `json:"mobile"`
	Message      string     `gorm:"type:text" json:"message"`
	Status       string     `gorm:"type:varchar(20)" json:"status"` // sent, failed, skipped
	ErrorMessage string     `gorm:"type:text" json:"errorMessage"`
	RemindFor    *time.Time `gorm:"index" json:"remindFor"`
	SentAt       time.Time  `json:"sentAt"`
	gorm.Model   `json:"-"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
