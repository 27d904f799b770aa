package main

import (
	"fmt"
	"log"
	"os"

	"maisonglow-backend/config"
	"maisonglow-backend/models"
	"maisonglow-backend/routes"
	"maisonglow-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.AdminUser{},
		&models.Service{},
		&models.Appointment{},
		&models.PortfolioItem{},
		&models.Testimonial{},
		&models.ContactMessage{},
		&models.PromotionalBanner{},
		&models.ContactFAQ{},
		&models.ContactInfo{},
		&models.SocialMediaLink{},
		&models.ReminderLog{},
	)

	seedAdmin()
}

func main() {
	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// seedAdmin creates the initial back-office user when the table is empty
// and the seed credentials are configured.
func seedAdmin() {
	var count int64
	config.DB.Model(&models.AdminUser{}).Count(&count)
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || email == "" || password == "" {
		return
	}

	admin := models.AdminUser{Username: username, Email: email, Password: password}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", username)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
