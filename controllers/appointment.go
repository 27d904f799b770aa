// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
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

// CreateAppointmentInput defines the expected JSON structure for an admin-created appointment
type CreateAppointmentInput struct {
	ServiceID   uuid.UUID `json:"serviceId" binding:"required"`
	ClientName  string    `json:"clientName" binding:"required"`
	ClientEmail string    `json:"clientEmail" binding:"required,email"`
	ClientPhone string    `json:"clientPhone"`
	Date        string    `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string    `json:"time" binding:"required"` // HH:MM
	Notes       string    `json:"notes"`
	Status      string    `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled no_show"`
}

// UpdateAppointmentInput defines the expected JSON structure for updating an appointment.
// Any status may be set to any other; transitions are not constrained.
type UpdateAppointmentInput struct {
	ServiceID          *uuid.UUID `json:"serviceId"`
	ClientName         *string    `json:"clientName"`
	ClientEmail        *string    `json:"clientEmail" binding:"omitempty,email"`
	ClientPhone        *string    `json:"clientPhone"`
	Date               *string    `json:"date"` // YYYY-MM-DD
	Time               *string    `json:"time"` // HH:MM
	Notes              *string    `json:"notes"`
	Status             *string    `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled no_show"`
	DepositPaid        *bool      `json:"depositPaid"`
	PaymentStatus      *string    `json:"paymentStatus" binding:"omitempty,oneof=unpaid deposit_paid paid"`
	CancellationReason *string    `json:"cancellationReason"`
}

// BulkStatusInput defines the expected JSON structure for a bulk status update
type BulkStatusInput struct {
	IDs    []uuid.UUID `json:"ids" binding:"required,min=1"`
	Status string      `json:"status" binding:"required,oneof=pending confirmed completed cancelled no_show"`
}

// GetAppointments lists appointments with optional filters: q (client
// name/email substring), status, service_id, from/to date range
func GetAppointments(c *gin.Context) {
	query := config.DB.Preload("Service").Order("appointment_at DESC")

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("client_name ILIKE ? OR client_email ILIKE ?", pattern, pattern)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if serviceID := c.Query("service_id"); serviceID != "" {
		serviceUUID, err := uuid.Parse(serviceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service_id format")
			return
		}
		query = query.Where("service_id = ?", serviceUUID)
	}
	if from := c.Query("from"); from != "" {
		fromDate, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date format")
			return
		}
		query = query.Where("appointment_at >= ?", utils.BeginningOfDay(fromDate))
	}
	if to := c.Query("to"); to != "" {
		toDate, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date format")
			return
		}
		query = query.Where("appointment_at <= ?", utils.EndOfDay(toDate))
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Service").Where("id = ?", appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CreateAppointment creates an appointment from the admin form. Same
// transactional conflict check as the public booking path.
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
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

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	appointment := models.Appointment{
		ServiceID:     service.ID,
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		ClientPhone:   input.ClientPhone,
		AppointmentAt: appointmentAt,
		Notes:         input.Notes,
		Status:        status,
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
			utils.RespondWithError(c, http.StatusConflict, "This time slot is already booked")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	appointment.Service = &service
	c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointment updates an existing appointment. Rescheduling re-runs
// the conflict check with the appointment's own id excluded.
func UpdateAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ?", appointmentUUID).First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ServiceID != nil {
		var service models.Service
		if err := config.DB.Where("id = ?", *input.ServiceID).First(&service).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
			return
		}
		appointment.ServiceID = *input.ServiceID
	}
	if input.ClientName != nil {
		appointment.ClientName = *input.ClientName
	}
	if input.ClientEmail != nil {
		appointment.ClientEmail = *input.ClientEmail
	}
	if input.ClientPhone != nil {
		if *input.ClientPhone != "" && !utils.ValidatePhone(*input.ClientPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		appointment.ClientPhone = *input.ClientPhone
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.DepositPaid != nil {
		appointment.DepositPaid = *input.DepositPaid
	}
	if input.PaymentStatus != nil {
		appointment.PaymentStatus = *input.PaymentStatus
	}
	if input.CancellationReason != nil {
		appointment.CancellationReason = *input.CancellationReason
	}

	rescheduled := input.Date != nil || input.Time != nil
	if rescheduled {
		date := appointment.AppointmentAt.Format("2006-01-02")
		clock := appointment.AppointmentAt.Format("15:04")
		if input.Date != nil {
			date = *input.Date
		}
		if input.Time != nil {
			clock = *input.Time
		}
		appointmentAt, err := parseAppointmentTime(date, clock)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
			return
		}
		appointment.AppointmentAt = appointmentAt
	}

	var service models.Service
	if err := config.DB.Where("id = ?", appointment.ServiceID).First(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if rescheduled {
			var sameDay []models.Appointment
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("appointment_at >= ? AND appointment_at <= ?",
					utils.BeginningOfDay(appointment.AppointmentAt), utils.EndOfDay(appointment.AppointmentAt)).
				Find(&sameDay).Error; err != nil {
				return err
			}
			if scheduling.HasConflict(sameDay, &service, appointment.AppointmentAt, appointment.ID) {
				return ErrSlotTaken
			}
		}
		return tx.Save(&appointment).Error
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			utils.RespondWithError(c, http.StatusConflict, "This time slot is already booked")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	appointment.Service = &service
	c.JSON(http.StatusOK, appointment)
}

// BulkUpdateStatus sets the status on a list of appointments and returns
// the updated records
func BulkUpdateStatus(c *gin.Context) {
	var input BulkStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Model(&models.Appointment{}).
		Where("id IN ?", input.IDs).
		Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointments")
		return
	}

	var updated []models.Appointment
	if err := config.DB.Preload("Service").Where("id IN ?", input.IDs).
		Order("appointment_at DESC").Find(&updated).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve updated appointments")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAppointment removes an appointment permanently
func DeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("id = ?", appointmentUUID).Delete(&models.Appointment{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
