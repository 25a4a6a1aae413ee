// File: tubtime/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public booking endpoints.
	CheckAvailabilityHandler gin.HandlerFunc
	CreateAppointmentHandler gin.HandlerFunc
	UploadPhotoHandler       gin.HandlerFunc

	// Staff endpoints.
	StaffLoginHandler        gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	UpdateAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
}
