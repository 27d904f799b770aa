package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact message statuses.
const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

type ContactMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Email   string    `gorm:"not null" json:"email"`
	Phone   string    `json:"phone"`
	Subject string    `json:"subject"`
	Body    string    `gorm:"type:text;not null" json:"body"`
	Status  string    `gorm:"type:varchar(20);default:'unread';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

type ContactFAQ struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Question string    `gorm:"not null" json:"question"`
	Answer   string    `gorm:"type:text;not null" json:"answer"`
	Position int       `gorm:"default:0" json:"position"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *ContactFAQ) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}

type ContactInfo struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Label    string    `gorm:"not null" json:"label"` // e.g. address, phone, hours
	Value    string    `gorm:"not null" json:"value"`
	Icon     string    `json:"icon"`
	Position int       `gorm:"default:0" json:"position"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *ContactInfo) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

type SocialMediaLink struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Platform string    `gorm:"not null" json:"platform"`
	URL      string    `gorm:"not null" json:"url"`
	Position int       `gorm:"default:0" json:"position"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *SocialMediaLink) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
