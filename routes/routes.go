package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayops/controllers"
	"stayops/metrics"
	"stayops/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.GetPrometheusHandler()))

	// Public routes (no authentication required)
	public := r.Group("/api")
	{
		public.POST("/users", controllers.Register)
		public.POST("/auth/login", controllers.Login)
	}

	// Protected routes (authentication required)
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/users", middleware.AdminAuthMiddleware(), controllers.GetUsers)

		// Dashboard
		protected.GET("/dashboard/stats", controllers.GetDashboardStats)
		protected.GET("/dashboard/availability", controllers.GetDashboardAvailability)

		// Properties
		properties := protected.Group("/properties")
		{
			properties.GET("", controllers.GetProperties)
			properties.GET("/:id", controllers.GetPropertyByID)
			properties.GET("/:id/status", controllers.GetPropertyStatus)
			properties.POST("", controllers.CreateProperty)
			properties.PUT("/:id", controllers.UpdateProperty)
		}

		// Bookings
		bookings := protected.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/recent", controllers.GetRecentBookings)
			bookings.GET("/:id", controllers.GetBookingByID)
			bookings.POST("", controllers.CreateBooking)
			bookings.PUT("/:id", controllers.UpdateBooking)
			bookings.PATCH("/:id", controllers.UpdateBooking)
		}

		// Messages
		messages := protected.Group("/messages")
		{
			messages.GET("", controllers.GetMessages)
			messages.GET("/unread", controllers.GetUnreadMessages)
			messages.POST("", controllers.CreateMessage)
			messages.PUT("/:id/read", controllers.MarkMessageRead)
		}

		// Housekeeping
		housekeeping := protected.Group("/housekeeping")
		{
			housekeeping.GET("", controllers.GetHousekeepingTasks)
			housekeeping.GET("/pending", controllers.GetPendingHousekeepingTasks)
			housekeeping.POST("", controllers.CreateHousekeepingTask)
			housekeeping.PUT("/:id", controllers.UpdateHousekeepingTask)
		}

		// Payments
		payments := protected.Group("/payments")
		{
			payments.GET("", controllers.GetPayments)
			payments.POST("", controllers.CreatePayment)
			payments.PUT("/:id", controllers.UpdatePayment)
		}
		protected.POST("/create-payment-intent", controllers.CreatePaymentIntent)

		// OTA integrations
		ota := protected.Group("/integrations/ota")
		{
			ota.GET("", controllers.GetOtaIntegrations)
			ota.POST("", controllers.CreateOtaIntegration)
			ota.PUT("/:id", controllers.UpdateOtaIntegration)
		}

		// Analytics
		analytics := protected.Group("/analytics")
		{
			analytics.GET("", controllers.GetAnalytics)
			analytics.POST("", controllers.CreateAnalytics)
		}
	}
}
