// controllers/portfolio.go
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

// CreatePortfolioInput defines the expected JSON structure for creating a portfolio item
type CreatePortfolioInput struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	ImageURL       string   `json:"imageUrl"`
	BeforeImageURL string   `json:"beforeImageUrl"`
	AfterImageURL  string   `json:"afterImageUrl"`
	VideoURL       string   `json:"videoUrl"`
	Tags           []string `json:"tags"`
	Featured       bool     `json:"featured"`
}

// UpdatePortfolioInput defines the expected JSON structure for updating a portfolio item
type UpdatePortfolioInput struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Category       *string   `json:"category"`
	ImageURL       *string   `json:"imageUrl"`
	BeforeImageURL *string   `json:"beforeImageUrl"`
	AfterImageURL  *string   `json:"afterImageUrl"`
	VideoURL       *string   `json:"videoUrl"`
	Tags           *[]string `json:"tags"`
	Featured       *bool     `json:"featured"`
}

// CreatePortfolioItem creates a new portfolio item
func CreatePortfolioItem(c *gin.Context) {
	var input CreatePortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item := models.PortfolioItem{
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		ImageURL:       input.ImageURL,
		BeforeImageURL: input.BeforeImageURL,
		AfterImageURL:  input.AfterImageURL,
		VideoURL:       input.VideoURL,
		Tags:           input.Tags,
		Featured:       input.Featured,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create portfolio item")
		return
	}

	item.DisplayMode = item.ResolveDisplayMode()
	c.JSON(http.StatusCreated, item)
}

// GetPortfolioItems retrieves all portfolio items
func GetPortfolioItems(c *gin.Context) {
	var items []models.PortfolioItem
	if err := config.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve portfolio")
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdatePortfolioItem updates an existing portfolio item
func UpdatePortfolioItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid portfolio item ID format")
		return
	}

	var input UpdatePortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.PortfolioItem
	if err := config.DB.Where("id = ?", itemUUID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Portfolio item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.BeforeImageURL != nil {
		item.BeforeImageURL = *input.BeforeImageURL
	}
	if input.AfterImageURL != nil {
		item.AfterImageURL = *input.AfterImageURL
	}
	if input.VideoURL != nil {
		item.VideoURL = *input.VideoURL
	}
	if input.Tags != nil {
		item.Tags = *input.Tags
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update portfolio item")
		return
	}

	item.DisplayMode = item.ResolveDisplayMode()
	c.JSON(http.StatusOK, item)
}

// DeletePortfolioItem removes a portfolio item
func DeletePortfolioItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid portfolio item ID format")
		return
	}

	result := config.DB.Where("id = ?", itemUUID).Delete(&models.PortfolioItem{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete portfolio item")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Portfolio item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}
