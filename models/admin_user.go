package models

import (
	"time"

	"maisonglow-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser is the single back-office role; there is no permission
// granularity.
type AdminUser struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	LastLogin *time.Time `json:"lastLogin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Hash the password before the row is written.
func (u *AdminUser) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
