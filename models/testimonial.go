package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientName   string    `gorm:"not null" json:"clientName"`
	ServiceLabel string    `json:"serviceLabel"`
	Rating       int       `gorm:"not null" json:"rating"` // 1-5
	Body         string    `gorm:"type:text;not null" json:"body"`

	AvatarInitials string `json:"avatarInitials"`
	AvatarURL      string `json:"avatarUrl"`

	Featured bool `gorm:"default:false" json:"featured"`
	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
