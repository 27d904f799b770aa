package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       string    `gorm:"type:decimal(10,2);not null" json:"price"` // decimal kept as string, parsed by analytics
	Duration    int       `gorm:"not null" json:"duration"`                 // in minutes
	Category    string    `gorm:"default:'General'" json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`

	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// DurationHours is the service duration rounded up to whole hours, the unit
// the conflict detector works in.
func (s *Service) DurationHours() int {
	return (s.Duration + 59) / 60
}
