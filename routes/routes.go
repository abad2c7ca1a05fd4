package routes

import (
	"net/http"
	"time"

	userRepo "strikersyard/database/repository/user"
	"strikersyard/handlers"
	"strikersyard/middleware"
	"strikersyard/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	UserRepo userRepo.UserRepository
	Auth     *handlers.AuthHandler
	Booking  *handlers.BookingHandler
	Services *handlers.ServicesHandler
}

// RegisterAuthRoutes registers OTP login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.POST("/auth/otp/request", h.Auth.RequestOTP)
		api.POST("/auth/otp/verify", h.Auth.VerifyOTP)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(h.UserRepo))
		protected.POST("/users/profile", h.Auth.UpdateProfile)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking core.
func RegisterBookingRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		// Public reads.
		api.GET("/slots", h.Booking.GetAvailability)
		api.GET("/services", h.Services.ListServices)

		// Booking-mutating endpoints require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(h.UserRepo))
		protected.POST("/bookings", h.Booking.CreateBooking)
		protected.GET("/bookings", h.Booking.MyBookings)
		protected.GET("/bookings/:bookingID", h.Booking.GetBooking)
		protected.POST("/payments/verify", h.Booking.VerifyPayment)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, h)
	RegisterBookingRoutes(r, h)
	RegisterHealthRoute(r)
}
