// controllers/content.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"maisonglow-backend/config"
	"maisonglow-backend/models"
	"maisonglow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banner inputs

type CreateBannerInput struct {
	Title    string     `json:"title" binding:"required"`
	Body     string     `json:"body"`
	LinkURL  string     `json:"linkUrl"`
	Position int        `json:"position"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
}

type UpdateBannerInput struct {
	Title    *string    `json:"title"`
	Body     *string    `json:"body"`
	LinkURL  *string    `json:"linkUrl"`
	Position *int       `json:"position"`
	IsActive *bool      `json:"isActive"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
}

// CreateBanner creates a promotional banner
func CreateBanner(c *gin.Context) {
	var input CreateBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	banner := models.PromotionalBanner{
		Title:    input.Title,
		Body:     input.Body,
		LinkURL:  input.LinkURL,
		Position: input.Position,
		IsActive: true,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}

	if err := config.DB.Create(&banner).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create banner")
		return
	}

	c.JSON(http.StatusCreated, banner)
}

// GetBanners retrieves all banners, including inactive and expired ones
func GetBanners(c *gin.Context) {
	var banners []models.PromotionalBanner
	if err := config.DB.Order("position").Find(&banners).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve banners")
		return
	}
	c.JSON(http.StatusOK, banners)
}

// UpdateBanner updates a promotional banner
func UpdateBanner(c *gin.Context) {
	bannerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid banner ID format")
		return
	}

	var input UpdateBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var banner models.PromotionalBanner
	if err := config.DB.Where("id = ?", bannerUUID).First(&banner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Banner not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		banner.Title = *input.Title
	}
	if input.Body != nil {
		banner.Body = *input.Body
	}
	if input.LinkURL != nil {
		banner.LinkURL = *input.LinkURL
	}
	if input.Position != nil {
		banner.Position = *input.Position
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.StartsAt != nil {
		banner.StartsAt = input.StartsAt
	}
	if input.EndsAt != nil {
		banner.EndsAt = input.EndsAt
	}

	if err := config.DB.Save(&banner).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update banner")
		return
	}

	c.JSON(http.StatusOK, banner)
}

// DeleteBanner removes a promotional banner
func DeleteBanner(c *gin.Context) {
	bannerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid banner ID format")
		return
	}

	result := config.DB.Where("id = ?", bannerUUID).Delete(&models.PromotionalBanner{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete banner")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Banner not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
}

// FAQ inputs

type FAQInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Position int    `json:"position"`
	IsActive *bool  `json:"isActive"`
}

// CreateFAQ creates a contact-page FAQ entry
func CreateFAQ(c *gin.Context) {
	var input FAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	faq := models.ContactFAQ{
		Question: input.Question,
		Answer:   input.Answer,
		Position: input.Position,
		IsActive: true,
	}
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&faq).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create FAQ")
		return
	}

	c.JSON(http.StatusCreated, faq)
}

// GetFAQs retrieves all FAQ entries
func GetFAQs(c *gin.Context) {
	var faqs []models.ContactFAQ
	if err := config.DB.Order("position").Find(&faqs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve FAQs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// UpdateFAQ replaces a FAQ entry's fields
func UpdateFAQ(c *gin.Context) {
	faqUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid FAQ ID format")
		return
	}

	var input FAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var faq models.ContactFAQ
	if err := config.DB.Where("id = ?", faqUUID).First(&faq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "FAQ not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	faq.Question = input.Question
	faq.Answer = input.Answer
	faq.Position = input.Position
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&faq).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update FAQ")
		return
	}

	c.JSON(http.StatusOK, faq)
}

// DeleteFAQ removes a FAQ entry
func DeleteFAQ(c *gin.Context) {
	faqUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid FAQ ID format")
		return
	}

	result := config.DB.Where("id = ?", faqUUID).Delete(&models.ContactFAQ{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete FAQ")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "FAQ not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted successfully"})
}

// Contact info inputs

type ContactInfoInput struct {
	Label    string `json:"label" binding:"required"`
	Value    string `json:"value" binding:"required"`
	Icon     string `json:"icon"`
	Position int    `json:"position"`
	IsActive *bool  `json:"isActive"`
}

// CreateContactInfo creates a contact-page info line
func CreateContactInfo(c *gin.Context) {
	var input ContactInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	info := models.ContactInfo{
		Label:    input.Label,
		Value:    input.Value,
		Icon:     input.Icon,
		Position: input.Position,
		IsActive: true,
	}
	if input.IsActive != nil {
		info.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&info).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create contact info")
		return
	}

	c.JSON(http.StatusCreated, info)
}

// GetContactInfos retrieves all contact info lines
func GetContactInfos(c *gin.Context) {
	var infos []models.ContactInfo
	if err := config.DB.Order("position").Find(&infos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contact info")
		return
	}
	c.JSON(http.StatusOK, infos)
}

// UpdateContactInfo replaces a contact info line's fields
func UpdateContactInfo(c *gin.Context) {
	infoUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact info ID format")
		return
	}

	var input ContactInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var info models.ContactInfo
	if err := config.DB.Where("id = ?", infoUUID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact info not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	info.Label = input.Label
	info.Value = input.Value
	info.Icon = input.Icon
	info.Position = input.Position
	if input.IsActive != nil {
		info.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&info).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update contact info")
		return
	}

	c.JSON(http.StatusOK, info)
}

// DeleteContactInfo removes a contact info line
func DeleteContactInfo(c *gin.Context) {
	infoUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact info ID format")
		return
	}

	result := config.DB.Where("id = ?", infoUUID).Delete(&models.ContactInfo{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete contact info")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Contact info not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact info deleted successfully"})
}

// Social link inputs

type SocialLinkInput struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Position int    `json:"position"`
	IsActive *bool  `json:"isActive"`
}

// CreateSocialLink creates a social media link
func CreateSocialLink(c *gin.Context) {
	var input SocialLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	link := models.SocialMediaLink{
		Platform: input.Platform,
		URL:      input.URL,
		Position: input.Position,
		IsActive: true,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&link).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create social link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

// GetSocialLinks retrieves all social media links
func GetSocialLinks(c *gin.Context) {
	var links []models.SocialMediaLink
	if err := config.DB.Order("position").Find(&links).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve social links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// UpdateSocialLink replaces a social media link's fields
func UpdateSocialLink(c *gin.Context) {
	linkUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid social link ID format")
		return
	}

	var input SocialLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var link models.SocialMediaLink
	if err := config.DB.Where("id = ?", linkUUID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Social link not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	link.Platform = input.Platform
	link.URL = input.URL
	link.Position = input.Position
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&link).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update social link")
		return
	}

	c.JSON(http.StatusOK, link)
}

// DeleteSocialLink removes a social media link
func DeleteSocialLink(c *gin.Context) {
	linkUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid social link ID format")
		return
	}

	result := config.DB.Where("id = ?", linkUUID).Delete(&models.SocialMediaLink{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete social link")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Social link not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Social link deleted successfully"})
}
