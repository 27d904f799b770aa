package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromotionalBanner is site content with an optional visibility window.
type PromotionalBanner struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Body     string    `json:"body"`
	LinkURL  string    `json:"linkUrl"`
	Position int       `gorm:"default:0" json:"position"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *PromotionalBanner) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// VisibleAt reports whether the banner should be shown at the given time.
func (b *PromotionalBanner) VisibleAt(t time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartsAt != nil && t.Before(*b.StartsAt) {
		return false
	}
	if b.EndsAt != nil && t.After(*b.EndsAt) {
		return false
	}
	return true
}
