// controllers/public.go
package controllers

import (
	"net/http"
	"time"

	"maisonglow-backend/config"
	"maisonglow-backend/models"
	"maisonglow-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetActiveServices returns the services currently offered
func GetActiveServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_active = ?", true).Order("category, name").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetPublicPortfolio returns portfolio items, optionally filtered by
// category or featured flag
func GetPublicPortfolio(c *gin.Context) {
	query := config.DB.Order("featured DESC, created_at DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var items []models.PortfolioItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve portfolio")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPublicTestimonials returns active testimonials, featured first
func GetPublicTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := config.DB.Where("is_active = ?", true).
		Order("featured DESC, created_at DESC").
		Find(&testimonials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// GetPublicContent returns the content blocks for the public site: visible
// banners, FAQs, contact info, and social links
func GetPublicContent(c *gin.Context) {
	now := time.Now()

	var banners []models.PromotionalBanner
	config.DB.Where("is_active = ?", true).Order("position").Find(&banners)
	visible := make([]models.PromotionalBanner, 0, len(banners))
	for _, b := range banners {
		if b.VisibleAt(now) {
			visible = append(visible, b)
		}
	}

	var faqs []models.ContactFAQ
	config.DB.Where("is_active = ?", true).Order("position").Find(&faqs)

	var info []models.ContactInfo
	config.DB.Where("is_active = ?", true).Order("position").Find(&info)

	var links []models.SocialMediaLink
	config.DB.Where("is_active = ?", true).Order("position").Find(&links)

	c.JSON(http.StatusOK, gin.H{
		"banners":     visible,
		"faqs":        faqs,
		"contactInfo": info,
		"socialLinks": links,
	})
}

// ContactMessageInput defines the expected JSON structure for the contact form
type ContactMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

// SubmitContactMessage creates a contact message from the public form
func SubmitContactMessage(c *gin.Context) {
	var input ContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	message := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Body:    input.Body,
		Status:  models.MessageUnread,
	}

	if err := config.DB.Create(&message).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	c.JSON(http.StatusCreated, message)
}
