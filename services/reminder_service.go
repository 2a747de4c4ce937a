// services/reminder_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"harshenterprise-backend/models"
	"harshenterprise-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends follow-up SMS for visits due the next day.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders(time.Now())
	})

	c.Start()
	log.Println("Visit reminder scheduler started")
}

// SendDailyReminders notifies every customer whose follow-up visit is due
// tomorrow. A ReminderLog row per visit and day keeps re-runs idempotent.
func (s *ReminderService) SendDailyReminders(now time.Time) {
	log.Println("Starting daily visit reminder processing...")

	tomorrow := utils.BeginningOfDay(now).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var visits []models.Visit
	if err := s.db.
		Where("next_visit_date >= ? AND next_visit_date < ?", tomorrow, dayAfter).
		Find(&visits).Error; err != nil {
		log.Printf("Failed to fetch visits due tomorrow: %v", err)
		return
	}

	for _, visit := range visits {
		s.processVisit(visit, tomorrow)
	}

	log.Println("Daily visit reminder processing completed")
}

func (s *ReminderService) processVisit(visit models.Visit, remindFor time.Time) {
	var existing models.ReminderLog
	err := s.db.
		Where("visit_id = ? AND remind_for = ? AND status = ?", visit.ID, remindFor, "sent").
		First(&existing).Error
	if err == nil {
		return // already reminded for this day
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Visit %s: failed to check reminder log: %v", visit.ID, err)
		return
	}

	mobile := s.customerMobile(visit)
	entry := models.ReminderLog{
		VisitID:      visit.ID,
		CustomerName: visit.CustomerName,
		Mobile:       mobile,
		RemindFor:    &remindFor,
		SentAt:       time.Now(),
	}

	if mobile == "" {
		entry.Status = "skipped"
		entry.ErrorMessage = "no customer mobile on record"
		s.saveLog(&entry)
		return
	}

	entry.Message = fmt.Sprintf(
		"Dear %s, your service visit with Harsh Enterprise is due on %s. Please keep the premises accessible.",
		visit.CustomerName, utils.FormatForDisplay(visit.NextVisitDate))

	if err := s.sendSMS(mobile, entry.Message); err != nil {
		log.Printf("Visit %s: failed to send reminder SMS: %v", visit.ID, err)
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
	} else {
		entry.Status = "sent"
	}
	s.saveLog(&entry)
}

// customerMobile prefers the linked customer record and falls back to a
// name lookup for free-text visits.
func (s *ReminderService) customerMobile(visit models.Visit) string {
	var customer models.Customer
	if visit.CustomerID != nil {
		if err := s.db.Where("id = ?", visit.CustomerID).First(&customer).Error; err == nil {
			return customer.Mobile
		}
	}
	if err := s.db.Where("name = ?", visit.CustomerName).First(&customer).Error; err == nil {
		return customer.Mobile
	}
	return ""
}

func (s *ReminderService) sendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}

func (s *ReminderService) saveLog(entry *models.ReminderLog) {
	if err := s.db.Create(entry).Error; err != nil {
		log.Printf("Failed to write reminder log: %v", err)
	}
}
