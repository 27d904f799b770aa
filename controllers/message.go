// controllers/message.go
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

// UpdateMessageInput defines the expected JSON structure for updating a message status
type UpdateMessageInput struct {
	Status string `json:"status" binding:"required,oneof=unread read replied"`
}

// GetContactMessages lists contact messages, newest first, optionally
// filtered by status
func GetContactMessages(c *gin.Context) {
	query := config.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// UpdateContactMessage changes a message's status
func UpdateContactMessage(c *gin.Context) {
	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	var input UpdateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var message models.ContactMessage
	if err := config.DB.Where("id = ?", messageUUID).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	message.Status = input.Status
	if err := config.DB.Save(&message).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update message")
		return
	}

	c.JSON(http.StatusOK, message)
}

// DeleteContactMessage removes a contact message
func DeleteContactMessage(c *gin.Context) {
	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	result := config.DB.Where("id = ?", messageUUID).Delete(&models.ContactMessage{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
