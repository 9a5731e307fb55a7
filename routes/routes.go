package routes

import (
	"time"

	"stylebook/handlers"
	"stylebook/middleware"
	"stylebook/services/booking"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStylistRoutes registers discovery, profile, schedule and availability endpoints.
func RegisterStylistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stylists")
	{
		api.GET("/search", hb.Stylist.SearchHandler)
		api.GET("/:id", hb.Stylist.GetStylistHandler)
		api.GET("/:id/portfolios/:portfolioId", hb.Stylist.GetPortfolioHandler)
		api.GET("/:id/schedule", hb.Stylist.GetScheduleHandler)
		api.GET("/:id/availability", hb.Stylist.AvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(booking.RoleStylist))
		protected.PUT("/:id/schedule", hb.Stylist.UpdateScheduleHandler)
	}
}

// RegisterAppointmentRoutes registers appointment booking and management endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Appointment.ListHandler)
		api.GET("/:id", hb.Appointment.ViewHandler)
		api.PATCH("/:id/status", hb.Appointment.UpdateStatusHandler)

		customer := api.Group("")
		customer.Use(middleware.RequireRole(booking.RoleCustomer))
		customer.POST("", hb.Appointment.BookHandler)
		customer.PUT("/:id/reschedule", hb.Appointment.RescheduleHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking session.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(booking.RoleCustomer))
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterStylistRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
