package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses. Transitions are deliberately unconstrained: the
// admin UI may move a booking between any two statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Payment statuses.
const (
	PaymentUnpaid      = "unpaid"
	PaymentDepositPaid = "deposit_paid"
	PaymentPaid        = "paid"
)

// Appointment is a booking against a single service. Hard-deleted only by
// an explicit admin delete, so no soft-delete column.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Service   *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	ClientName  string `gorm:"not null" json:"clientName"`
	ClientEmail string `gorm:"not null" json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`

	AppointmentAt time.Time `gorm:"index;not null" json:"appointmentAt"` // salon-local date + time
	Notes         string    `gorm:"type:text" json:"notes"`

	Status             string `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	DepositAmount      string `gorm:"type:decimal(10,2);default:'0.00'" json:"depositAmount"` // 20% of service price at creation
	DepositPaid        bool   `gorm:"default:false" json:"depositPaid"`
	PaymentStatus      string `gorm:"type:varchar(20);default:'unpaid'" json:"paymentStatus"`
	CancellationReason string `json:"cancellationReason"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
