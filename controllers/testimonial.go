// controllers/testimonial.go
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

// CreateTestimonialInput defines the expected JSON structure for creating a testimonial
type CreateTestimonialInput struct {
	ClientName   string `json:"clientName" binding:"required"`
	ServiceLabel string `json:"serviceLabel"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Body         string `json:"body" binding:"required"`
	AvatarURL    string `json:"avatarUrl"`
	Featured     bool   `json:"featured"`
}

// UpdateTestimonialInput defines the expected JSON structure for updating a testimonial
type UpdateTestimonialInput struct {
	ClientName   *string `json:"clientName"`
	ServiceLabel *string `json:"serviceLabel"`
	Rating       *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Body         *string `json:"body"`
	AvatarURL    *string `json:"avatarUrl"`
	Featured     *bool   `json:"featured"`
	IsActive     *bool   `json:"isActive"`
}

// CreateTestimonial creates a new testimonial
func CreateTestimonial(c *gin.Context) {
	var input CreateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	testimonial := models.Testimonial{
		ClientName:     input.ClientName,
		ServiceLabel:   input.ServiceLabel,
		Rating:         input.Rating,
		Body:           input.Body,
		AvatarInitials: utils.AvatarInitials(input.ClientName),
		AvatarURL:      input.AvatarURL,
		Featured:       input.Featured,
		IsActive:       true,
	}

	if err := config.DB.Create(&testimonial).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

// GetTestimonials retrieves all testimonials, including inactive ones
func GetTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := config.DB.Order("featured DESC, created_at DESC").Find(&testimonials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// UpdateTestimonial updates an existing testimonial
func UpdateTestimonial(c *gin.Context) {
	testimonialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	var input UpdateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var testimonial models.Testimonial
	if err := config.DB.Where("id = ?", testimonialUUID).First(&testimonial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ClientName != nil {
		testimonial.ClientName = *input.ClientName
		testimonial.AvatarInitials = utils.AvatarInitials(*input.ClientName)
	}
	if input.ServiceLabel != nil {
		testimonial.ServiceLabel = *input.ServiceLabel
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.Body != nil {
		testimonial.Body = *input.Body
	}
	if input.AvatarURL != nil {
		testimonial.AvatarURL = *input.AvatarURL
	}
	if input.Featured != nil {
		testimonial.Featured = *input.Featured
	}
	if input.IsActive != nil {
		testimonial.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&testimonial).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial removes a testimonial
func DeleteTestimonial(c *gin.Context) {
	testimonialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	result := config.DB.Where("id = ?", testimonialUUID).Delete(&models.Testimonial{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
