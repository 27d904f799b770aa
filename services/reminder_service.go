// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"maisonglow-backend/models"
	"maisonglow-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends next-day SMS reminders for confirmed appointments.
// The Twilio client is built once at startup and injected; nothing here is
// a hidden singleton.
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
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// SendDailyReminders messages every confirmed appointment happening
// tomorrow that has a phone number and no sent reminder yet.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	var appointments []models.Appointment
	err := s.db.Preload("Service").
		Where("appointment_at >= ? AND appointment_at <= ? AND status = ?",
			utils.BeginningOfDay(tomorrow), utils.EndOfDay(tomorrow), models.StatusConfirmed).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Failed to load tomorrow's appointments: %v", err)
		return
	}

	sent := 0
	for _, appointment := range appointments {
		if appointment.ClientPhone == "" {
			continue
		}

		var already int64
		s.db.Model(&models.ReminderLog{}).
			Where("appointment_id = ? AND status = ?", appointment.ID, "sent").
			Count(&already)
		if already > 0 {
			continue
		}

		if err := s.sendReminder(appointment); err != nil {
			log.Printf("Reminder for appointment %s failed: %v", appointment.ID, err)
			continue
		}
		sent++
	}

	log.Printf("Daily reminder processing finished, %d reminders sent", sent)
}

func (s *ReminderService) sendReminder(appointment models.Appointment) error {
	serviceName := "your appointment"
	if appointment.Service != nil {
		serviceName = appointment.Service.Name
	}
	message := fmt.Sprintf("Hi %s, a reminder of %s tomorrow at %s. Reply or call us if you need to reschedule.",
		appointment.ClientName, serviceName, appointment.AppointmentAt.Format("15:04"))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(appointment.ClientPhone)
	params.SetFrom(s.from)
	params.SetBody(message)

	logEntry := models.ReminderLog{
		AppointmentID: appointment.ID,
		Phone:         appointment.ClientPhone,
		Message:       message,
		SentAt:        time.Now(),
	}

	_, err := s.client.Api.CreateMessage(params)
	if err != nil {
		logEntry.Status = "failed"
		logEntry.ErrorMessage = err.Error()
		s.db.Create(&logEntry)
		return err
	}

	logEntry.Status = "sent"
	return s.db.Create(&logEntry).Error
}
