// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"maisonglow-backend/config"
	"maisonglow-backend/models"
	"maisonglow-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be username or email
	Password   string `json:"password" binding:"required"`
}

// Register creates a new admin user
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if username or email already exists
	var existing models.AdminUser
	result := config.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username or email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	admin := models.AdminUser{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password, // Hashed in BeforeCreate hook
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create admin user")
		return
	}

	token, err := utils.GenerateToken(admin.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "admin": admin})
}

// Login authenticates an admin by username or email
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var admin models.AdminUser
	if err := config.DB.Where("username = ? OR email = ?", input.Identifier, input.Identifier).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, admin.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := time.Now()
	admin.LastLogin = &now
	config.DB.Save(&admin)

	token, err := utils.GenerateToken(admin.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

// Me returns the authenticated admin user
func Me(c *gin.Context) {
	adminID, exists := c.Get("adminId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Admin ID not found in context")
		return
	}

	var admin models.AdminUser
	if err := config.DB.Where("id = ?", adminID).First(&admin).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Admin user not found")
		return
	}

	c.JSON(http.StatusOK, admin)
}
