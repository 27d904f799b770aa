// controllers/booking.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"maisonglow-backend/config"
	"maisonglow-backend/models"
	"maisonglow-backend/scheduling"
	"maisonglow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSlotTaken aborts the booking transaction when the conflict detector
// finds a collision.
var ErrSlotTaken = errors.New("slot taken")

const depositRate = 0.20

// BookAppointmentInput defines the expected JSON structure for a public booking
type BookAppointmentInput struct {
	ServiceID   uuid.UUID `json:"serviceId" binding:"required"`
	ClientName  string    `json:"clientName" binding:"required"`
	ClientEmail string    `json:"clientEmail" binding:"required,email"`
	ClientPhone string    `json:"clientPhone"`
	Date        string    `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string    `json:"time" binding:"required"` // HH:MM
	Notes       string    `json:"notes"`
}

// GetAvailability returns the bookable slots for a date
func GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	appointments, err := appointmentsOnDay(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": scheduling.AvailableSlots(appointments, date),
	})
}

// BookAppointment creates a pending appointment from the public booking
// form. The conflict check runs inside the same transaction as the insert,
// with the day's rows locked, so two racing bookings cannot both pass it.
func BookAppointment(c *gin.Context) {
	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ClientPhone != "" && !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	appointmentAt, err := parseAppointmentTime(input.Date, input.Time)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", input.ServiceID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if !service.IsActive {
		utils.RespondWithError(c, http.StatusBadRequest, "Service is not currently offered")
		return
	}

	appointment := models.Appointment{
		ServiceID:     service.ID,
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		ClientPhone:   input.ClientPhone,
		AppointmentAt: appointmentAt,
		Notes:         input.Notes,
		Status:        models.StatusPending,
		DepositAmount: depositFor(service.Price),
		PaymentStatus: models.PaymentUnpaid,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var sameDay []models.Appointment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("appointment_at >= ? AND appointment_at <= ?",
				utils.BeginningOfDay(appointmentAt), utils.EndOfDay(appointmentAt)).
			Find(&sameDay).Error; err != nil {
			return err
		}
		if scheduling.HasConflict(sameDay, &service, appointmentAt, uuid.Nil) {
			return ErrSlotTaken
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			utils.RespondWithError(c, http.StatusConflict, "This time slot is no longer available, please choose a different time")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	appointment.Service = &service
	c.JSON(http.StatusCreated, appointment)
}

func parseAppointmentTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}

// depositFor computes the 20% deposit from the service price at booking
// time, formatted back to a decimal string.
func depositFor(price string) string {
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", v*depositRate)
}

func appointmentsOnDay(db *gorm.DB, date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Where("appointment_at >= ? AND appointment_at <= ?",
		utils.BeginningOfDay(date), utils.EndOfDay(date)).
		Find(&appointments).Error
	return appointments, err
}
