package routes

import (
	"time"

	"chitoro-backend/handlers"
	"chitoro-backend/middleware"
	"chitoro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store *utils.StatusStore, notifier utils.Notifier) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	businessHandler := &handlers.BusinessHandler{DB: db, Notifier: notifier}
	holidayHandler := &handlers.HolidayHandler{}
	statusHandler := &handlers.StatusHandler{DB: db, Store: store}

	writeLimiter := middleware.NewRateLimiter(20, 1*time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Directory routes
		api.GET("/businesses", businessHandler.ListBusinesses)
		api.GET("/businesses/:id", businessHandler.GetBusiness)
		api.GET("/locations", businessHandler.GetLocations)

		// Holiday routes
		api.GET("/holidays", holidayHandler.GetHolidays)
		api.GET("/holidays/today", holidayHandler.GetTodayHoliday)

		// Live open/closed snapshot
		api.GET("/statuses", statusHandler.GetStatuses)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		// User profile
		protected.GET("/auth/profile", authHandler.GetProfile)

		// Listing management
		writes := protected.Group("")
		writes.Use(writeLimiter.Middleware())
		writes.POST("/businesses", businessHandler.CreateBusiness)
		writes.PUT("/businesses/:id/branches/:branchId", businessHandler.UpdateBranch)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/statuses/refresh", statusHandler.RefreshNow)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
