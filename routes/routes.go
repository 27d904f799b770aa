package routes

import (
	"os"
	"strings"

	"maisonglow-backend/config"
	"maisonglow-backend/controllers"
	"maisonglow-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public site routes
	api := r.Group("/api")
	{
		api.GET("/services", controllers.GetActiveServices)
		api.GET("/portfolio", controllers.GetPublicPortfolio)
		api.GET("/testimonials", controllers.GetPublicTestimonials)
		api.GET("/content", controllers.GetPublicContent)
		api.GET("/availability", controllers.GetAvailability)
		api.POST("/appointments", controllers.BookAppointment)
		api.POST("/contact", controllers.SubmitContactMessage)
	}

	admin := r.Group("/api/admin")
	admin.Use(utils.AuthMiddleware())
	{
		// Appointment routes
		appointments := admin.Group("/appointments")
		{
			appointments.GET("", controllers.GetAppointments)
			appointments.POST("", controllers.CreateAppointment)
			appointments.PUT("/bulk-status", controllers.BulkUpdateStatus)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Service routes
		services := admin.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Portfolio routes
		portfolio := admin.Group("/portfolio")
		{
			portfolio.POST("", controllers.CreatePortfolioItem)
			portfolio.GET("", controllers.GetPortfolioItems)
			portfolio.PUT("/:id", controllers.UpdatePortfolioItem)
			portfolio.DELETE("/:id", controllers.DeletePortfolioItem)
		}

		// Testimonial routes
		testimonials := admin.Group("/testimonials")
		{
			testimonials.POST("", controllers.CreateTestimonial)
			testimonials.GET("", controllers.GetTestimonials)
			testimonials.PUT("/:id", controllers.UpdateTestimonial)
			testimonials.DELETE("/:id", controllers.DeleteTestimonial)
		}

		// Contact message routes
		messages := admin.Group("/messages")
		{
			messages.GET("", controllers.GetContactMessages)
			messages.PUT("/:id", controllers.UpdateContactMessage)
			messages.DELETE("/:id", controllers.DeleteContactMessage)
		}

		// Content management routes
		banners := admin.Group("/banners")
		{
			banners.POST("", controllers.CreateBanner)
			banners.GET("", controllers.GetBanners)
			banners.PUT("/:id", controllers.UpdateBanner)
			banners.DELETE("/:id", controllers.DeleteBanner)
		}
		faqs := admin.Group("/faqs")
		{
			faqs.POST("", controllers.CreateFAQ)
			faqs.GET("", controllers.GetFAQs)
			faqs.PUT("/:id", controllers.UpdateFAQ)
			faqs.DELETE("/:id", controllers.DeleteFAQ)
		}
		contactInfo := admin.Group("/contact-info")
		{
			contactInfo.POST("", controllers.CreateContactInfo)
			contactInfo.GET("", controllers.GetContactInfos)
			contactInfo.PUT("/:id", controllers.UpdateContactInfo)
			contactInfo.DELETE("/:id", controllers.DeleteContactInfo)
		}
		socialLinks := admin.Group("/social-links")
		{
			socialLinks.POST("", controllers.CreateSocialLink)
			socialLinks.GET("", controllers.GetSocialLinks)
			socialLinks.PUT("/:id", controllers.UpdateSocialLink)
			socialLinks.DELETE("/:id", controllers.DeleteSocialLink)
		}

		// Analytics routes
		analyticsController := controllers.AnalyticsController{}
		admin.GET("/analytics", analyticsController.GetSnapshot)
		admin.GET("/analytics/trend", analyticsController.GetRevenueTrend)
		admin.GET("/analytics/top-services", analyticsController.GetTopServices)
		admin.GET("/analytics/status-distribution", analyticsController.GetStatusDistribution)
		admin.GET("/analytics/peak-hours", analyticsController.GetPeakHours)
	}

	return r
}
