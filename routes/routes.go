package routes

import (
	"net/http"
	"time"

	"tubtime/config"
	"tubtime/handlers"
	"tubtime/middleware"
	"tubtime/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability", hb.CheckAvailabilityHandler)
		api.POST("/appointments", hb.CreateAppointmentHandler)
		api.POST("/uploads/photo", hb.UploadPhotoHandler)
	}
}

// RegisterStaffRoutes registers staff login and the admin-only appointment
// management endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/login", hb.StaffLoginHandler)

	staff := r.Group("/api/appointments")
	staff.Use(middleware.JWTAuthStaffMiddleware())
	{
		staff.GET("", hb.ListAppointmentsHandler)
		staff.GET("/:id", hb.GetAppointmentHandler)
		staff.PATCH("/:id", hb.UpdateAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The CORS allowlist is configuration, not code: deployment environments
// differ only in CORS_ALLOWED_ORIGINS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	origins := config.AppConfig.CORSAllowedOrigins
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	RegisterBookingRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterHealthRoute(r)
}
