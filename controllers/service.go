// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"maisonglow-backend/config"
	"maisonglow-backend/models"
	"maisonglow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Duration    int    `json:"duration" binding:"required,min=1"` // in minutes
	Category    string `json:"category"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Duration    *int    `json:"duration" binding:"omitempty,min=1"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

// CreateService creates a new service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePrice(input.Price) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price format")
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		IsActive:    true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services, including deactivated ones
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("category, name").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		if !utils.ValidatePrice(*input.Price) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid price format")
			return
		}
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service. A service referenced by any appointment
// is never physically deleted; it is deactivated instead so the bookings
// keep their price and duration history.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var referenced int64
	if err := config.DB.Model(&models.Appointment{}).
		Where("service_id = ?", serviceUUID).Count(&referenced).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if referenced > 0 {
		service.IsActive = false
		if err := config.DB.Save(&service).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate service")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Service is referenced by appointments and was deactivated instead"})
		return
	}

	if err := config.DB.Delete(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
