package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records one SMS reminder attempt for an appointment.
type ReminderLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"appointmentId"`
	Phone         string    `gorm:"type:varchar(30)" json:"phone"`
	Message       string    `gorm:"type:text" json:"message"`
	Status        string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage  string    `gorm:"type:text" json:"errorMessage"`
	SentAt        time.Time `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
